package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/dto"
	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/repository"
)

// AstronautDutyService 航天任务生命周期业务接口
type AstronautDutyService interface {
	// Create 创建任务记录：先过准入校验，再在单事务内更新投影、关闭在任记录、写入新记录
	Create(ctx context.Context, req *dto.CreateAstronautDutyRequest) (*dto.CreateAstronautDutyResponse, error)
	// Update 修订任务记录；补写结束日期且无其他在任记录时自动生成退役记录
	Update(ctx context.Context, dutyID int64, req *dto.UpdateAstronautDutyRequest) (*dto.UpdateAstronautDutyResponse, error)
	// GetDutiesByName 按姓名查询任务台账（查无此人视为成功的空结果）
	GetDutiesByName(ctx context.Context, name string) (*dto.AstronautDutiesByNameResponse, error)
}

type astronautDutyService struct {
	repo   *repository.Repository
	cache  *rosterCache
	logger *zap.Logger
}

// NewAstronautDutyService 创建 AstronautDutyService 实例
func NewAstronautDutyService(repo *repository.Repository, cache *rosterCache, logger *zap.Logger) AstronautDutyService {
	return &astronautDutyService{repo: repo, cache: cache, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *astronautDutyService) Create(ctx context.Context, req *dto.CreateAstronautDutyRequest) (*dto.CreateAstronautDutyResponse, error) {
	startDate, err := parseDutyDate(req.DutyStartDate)
	if err != nil {
		return nil, err
	}
	cmd := &dutyCommand{
		Name:      strings.TrimSpace(req.Name),
		Rank:      req.Rank,
		DutyTitle: req.DutyTitle,
		StartDate: startDate,
	}

	// 准入校验：全部规则通过之前不发生任何写入
	person, err := validateNewDuty(ctx, s.repo, cmd)
	if err != nil {
		return nil, err
	}

	retiring := isRetirement(cmd.DutyTitle)
	// 在任记录与投影的生涯结束日期统一收口到新任务开始日的前一天
	closeDate := model.NormalizeDate(cmd.StartDate.AddDate(0, 0, -1))

	newDuty := &model.AstronautDuty{
		PersonID:      person.ID,
		Rank:          cmd.Rank,
		DutyTitle:     cmd.DutyTitle,
		DutyStartDate: cmd.StartDate,
		DutyEndDate:   nil,
	}

	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 1. 投影 upsert：CareerStartDate 仅在首次创建时写入
		detail, err := txRepo.AstronautDetail.GetByPersonID(ctx, person.ID)
		if err != nil {
			return err
		}
		if detail == nil {
			detail = &model.AstronautDetail{
				PersonID:         person.ID,
				CurrentRank:      cmd.Rank,
				CurrentDutyTitle: cmd.DutyTitle,
				CareerStartDate:  cmd.StartDate,
			}
			if retiring {
				detail.CareerEndDate = &closeDate
			}
			if err := txRepo.AstronautDetail.Create(ctx, detail); err != nil {
				return err
			}
		} else {
			detail.CurrentRank = cmd.Rank
			detail.CurrentDutyTitle = cmd.DutyTitle
			if retiring {
				detail.CareerEndDate = &closeDate
			}
			if err := txRepo.AstronautDetail.Update(ctx, detail); err != nil {
				return err
			}
		}

		// 2. 关闭在任记录：退役关闭全部，否则只关闭最近开始的一条
		if retiring {
			openDuties, err := txRepo.AstronautDuty.ListOpenDuties(ctx, person.ID)
			if err != nil {
				return err
			}
			for i := range openDuties {
				end := closeDate
				openDuties[i].DutyEndDate = &end
				if err := txRepo.AstronautDuty.Update(ctx, &openDuties[i]); err != nil {
					return err
				}
			}
		} else {
			openDuty, err := txRepo.AstronautDuty.GetOpenDuty(ctx, person.ID)
			if err != nil {
				return err
			}
			if openDuty != nil {
				end := closeDate
				openDuty.DutyEndDate = &end
				if err := txRepo.AstronautDuty.Update(ctx, openDuty); err != nil {
					return err
				}
			}
		}

		// 3. 写入新任务记录
		return txRepo.AstronautDuty.Create(ctx, newDuty)
	})
	if err != nil {
		s.logger.Error("创建任务记录失败",
			zap.String("name", cmd.Name),
			zap.String("duty_title", cmd.DutyTitle),
			zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("任务记录已创建",
		zap.Int64("duty_id", newDuty.ID),
		zap.String("name", cmd.Name),
		zap.String("duty_title", cmd.DutyTitle),
		zap.Bool("retirement", retiring))

	return &dto.CreateAstronautDutyResponse{ID: newDuty.ID}, nil
}

// ────────────────────── Update ──────────────────────

func (s *astronautDutyService) Update(ctx context.Context, dutyID int64, req *dto.UpdateAstronautDutyRequest) (*dto.UpdateAstronautDutyResponse, error) {
	duty, err := s.repo.AstronautDuty.GetByID(ctx, dutyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDutyNotFound
		}
		s.logger.Error("查询任务记录失败", zap.Int64("duty_id", dutyID), zap.Error(err))
		return nil, err
	}

	// 修订不重跑创建准入校验；未提供的字段保持原值
	if req.DutyTitle != nil && *req.DutyTitle != "" {
		duty.DutyTitle = *req.DutyTitle
	}
	if req.Rank != nil && *req.Rank != "" {
		duty.Rank = *req.Rank
	}
	if req.DutyStartDate != nil {
		startDate, err := parseDutyDate(*req.DutyStartDate)
		if err != nil {
			return nil, err
		}
		duty.DutyStartDate = startDate
	}

	var closing bool
	var endDate time.Time
	if req.DutyEndDate != nil {
		endDate, err = parseDutyDate(*req.DutyEndDate)
		if err != nil {
			return nil, err
		}
		duty.DutyEndDate = &endDate
		closing = true
	}

	var retirementCreated bool
	err = s.repo.Transaction(ctx, func(txRepo *repository.Repository) error {
		// 先落库修订后的记录：单人单在任约束要求退役记录写入前
		// 该人员不得再持有其他在任记录
		if err := txRepo.AstronautDuty.Update(ctx, duty); err != nil {
			return err
		}

		if !closing {
			return nil
		}

		// 补写结束日期后若无其他在任记录，自动生成退役记录并更新投影
		otherOpen, err := txRepo.AstronautDuty.CountOtherOpenDuties(ctx, duty.PersonID, duty.ID)
		if err != nil {
			return err
		}
		if otherOpen > 0 {
			return nil
		}

		retirement := &model.AstronautDuty{
			PersonID:      duty.PersonID,
			Rank:          duty.Rank,
			DutyTitle:     retiredDutyTitle,
			DutyStartDate: model.NormalizeDate(endDate.AddDate(0, 0, 1)),
			DutyEndDate:   nil,
		}
		if err := txRepo.AstronautDuty.Create(ctx, retirement); err != nil {
			return err
		}

		detail, err := txRepo.AstronautDetail.GetByPersonID(ctx, duty.PersonID)
		if err != nil {
			return err
		}
		if detail != nil {
			detail.CurrentDutyTitle = retiredDutyTitle
			detail.CurrentRank = duty.Rank
			detail.CareerEndDate = &endDate
			if err := txRepo.AstronautDetail.Update(ctx, detail); err != nil {
				return err
			}
		}
		retirementCreated = true
		return nil
	})
	if err != nil {
		s.logger.Error("修订任务记录失败", zap.Int64("duty_id", dutyID), zap.Error(err))
		return nil, err
	}

	s.cache.Invalidate(ctx)

	s.logger.Info("任务记录已修订",
		zap.Int64("duty_id", duty.ID),
		zap.Bool("retirement_created", retirementCreated))

	return &dto.UpdateAstronautDutyResponse{
		Duty:              toDutyResponse(duty),
		RetirementCreated: retirementCreated,
	}, nil
}

// ────────────────────── GetDutiesByName ──────────────────────

func (s *astronautDutyService) GetDutiesByName(ctx context.Context, name string) (*dto.AstronautDutiesByNameResponse, error) {
	// 空白姓名是非法请求，不发起查询
	if strings.TrimSpace(name) == "" {
		return nil, ErrNameRequired
	}

	person, err := s.repo.Person.GetPersonAstronautByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 查无此人：成功的空结果而非错误
			return &dto.AstronautDutiesByNameResponse{
				Person: nil,
				Duties: []dto.AstronautDutyResponse{},
			}, nil
		}
		s.logger.Error("查询人员状态失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	duties, err := s.repo.AstronautDuty.ListByPerson(ctx, person.PersonID)
	if err != nil {
		s.logger.Error("查询任务台账失败", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	rows := make([]dto.AstronautDutyResponse, 0, len(duties))
	for i := range duties {
		rows = append(rows, toDutyResponse(&duties[i]))
	}

	return &dto.AstronautDutiesByNameResponse{
		Person: toPersonAstronautResponse(person),
		Duties: rows,
	}, nil
}

// ── 内部辅助方法 ──

// parseDutyDate 解析日粒度日期并规整到 UTC 零点
func parseDutyDate(raw string) (time.Time, error) {
	t, err := time.Parse(model.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("日期格式无效（应为 %s）: %w", model.DateOnly, ErrDutyFieldRequired)
	}
	return model.NormalizeDate(t), nil
}

func toDutyResponse(duty *model.AstronautDuty) dto.AstronautDutyResponse {
	resp := dto.AstronautDutyResponse{
		ID:            duty.ID,
		PersonID:      duty.PersonID,
		Rank:          duty.Rank,
		DutyTitle:     duty.DutyTitle,
		DutyStartDate: duty.DutyStartDate.Format(model.DateOnly),
	}
	if duty.DutyEndDate != nil {
		resp.DutyEndDate = duty.DutyEndDate.Format(model.DateOnly)
	}
	return resp
}

func toPersonAstronautResponse(row *model.PersonAstronaut) *dto.PersonAstronautResponse {
	resp := &dto.PersonAstronautResponse{
		PersonID: row.PersonID,
		Name:     row.Name,
	}
	if row.CurrentRank != nil {
		resp.CurrentRank = *row.CurrentRank
	}
	if row.CurrentDutyTitle != nil {
		resp.CurrentDutyTitle = *row.CurrentDutyTitle
	}
	if row.CareerStartDate != nil {
		resp.CareerStartDate = row.CareerStartDate.Format(model.DateOnly)
	}
	if row.CareerEndDate != nil {
		resp.CareerEndDate = row.CareerEndDate.Format(model.DateOnly)
	}
	return resp
}
