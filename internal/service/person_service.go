package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/dto"
	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/repository"
)

// ── 人员模块业务错误 ──

var (
	// ErrPersonNameExists 姓名是唯一查找键，不允许重复
	ErrPersonNameExists = errors.New("该姓名已存在")
)

// PersonService 人员目录业务接口
type PersonService interface {
	Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.PersonResponse, error)
	// Rename 重命名人员：变更查找键，id 不变
	Rename(ctx context.Context, currentName string, req *dto.RenamePersonRequest) (*dto.PersonResponse, error)
	// GetByName 单人当前状态查询；查无此人返回 (nil, nil)，视为成功的空结果
	GetByName(ctx context.Context, name string) (*dto.PersonAstronautResponse, error)
	// List 花名册：所有持有投影或任务记录的人员（纯目录人员不返回）
	List(ctx context.Context) ([]dto.PersonAstronautResponse, error)
}

type personService struct {
	repo   *repository.Repository
	cache  *rosterCache
	logger *zap.Logger
}

// NewPersonService 创建 PersonService 实例
func NewPersonService(repo *repository.Repository, cache *rosterCache, logger *zap.Logger) PersonService {
	return &personService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *personService) Create(ctx context.Context, req *dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	// 检查姓名唯一性
	existing, err := s.repo.Person.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询人员失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}
	if existing != nil {
		return nil, ErrPersonNameExists
	}

	person := &model.Person{Name: name}
	if err := s.repo.Person.Create(ctx, person); err != nil {
		s.logger.Error("创建人员失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return &dto.PersonResponse{ID: person.ID, Name: person.Name}, nil
}

// ────────────────────── Rename ──────────────────────

func (s *personService) Rename(ctx context.Context, currentName string, req *dto.RenamePersonRequest) (*dto.PersonResponse, error) {
	newName := strings.TrimSpace(req.NewName)
	if newName == "" {
		return nil, ErrNameRequired
	}

	person, err := s.repo.Person.GetByName(ctx, currentName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPersonNotFound
		}
		s.logger.Error("查询人员失败", zap.String("name", currentName), zap.Error(err))
		return nil, err
	}

	// 新姓名被他人占用时拒绝
	if newName != person.Name {
		existing, err := s.repo.Person.GetByName(ctx, newName)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, ErrPersonNameExists
		}
	}

	person.Name = newName
	if err := s.repo.Person.Update(ctx, person); err != nil {
		s.logger.Error("重命名人员失败",
			zap.String("current_name", currentName),
			zap.String("new_name", newName),
			zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return &dto.PersonResponse{ID: person.ID, Name: person.Name}, nil
}

// ────────────────────── GetByName ──────────────────────

func (s *personService) GetByName(ctx context.Context, name string) (*dto.PersonAstronautResponse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	row, err := s.repo.Person.GetPersonAstronautByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 查无此人：成功的空结果而非错误
			return nil, nil
		}
		s.logger.Error("查询人员状态失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	return toPersonAstronautResponse(row), nil
}

// ────────────────────── List ──────────────────────

func (s *personService) List(ctx context.Context) ([]dto.PersonAstronautResponse, error) {
	if rows, ok := s.cache.Get(ctx); ok {
		return rows, nil
	}

	people, err := s.repo.Person.ListPersonAstronauts(ctx)
	if err != nil {
		s.logger.Error("查询花名册失败", zap.Error(err))
		return nil, err
	}

	rows := make([]dto.PersonAstronautResponse, 0, len(people))
	for i := range people {
		rows = append(rows, *toPersonAstronautResponse(&people[i]))
	}

	s.cache.Set(ctx, rows)

	return rows, nil
}
