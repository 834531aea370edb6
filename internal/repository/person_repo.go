package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
)

// PersonRepository 人员数据访问接口
type PersonRepository interface {
	Create(ctx context.Context, person *model.Person) error
	GetByID(ctx context.Context, id int64) (*model.Person, error)
	GetByName(ctx context.Context, name string) (*model.Person, error)
	Update(ctx context.Context, person *model.Person) error
	// GetPersonAstronautByName 联合查询单人当前状态（投影优先，回退在任记录）
	GetPersonAstronautByName(ctx context.Context, name string) (*model.PersonAstronaut, error)
	// ListPersonAstronauts 列出所有持有投影或任务记录的人员（纯目录人员不返回）
	ListPersonAstronauts(ctx context.Context) ([]model.PersonAstronaut, error)
}

// personRepo PersonRepository 的 GORM 实现
type personRepo struct {
	db *gorm.DB
}

// NewPersonRepo 创建 PersonRepository 实例
func NewPersonRepo(db *gorm.DB) PersonRepository {
	return &personRepo{db: db}
}

func (r *personRepo) Create(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Create(person).Error
}

func (r *personRepo) GetByID(ctx context.Context, id int64) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) GetByName(ctx context.Context, name string) (*model.Person, error) {
	var person model.Person
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&person).Error
	if err != nil {
		return nil, err
	}
	return &person, nil
}

func (r *personRepo) Update(ctx context.Context, person *model.Person) error {
	return r.db.WithContext(ctx).Save(person).Error
}

// personAstronautSelect 投影优先、在任记录回退的联合查询主体
const personAstronautSelect = `
SELECT DISTINCT
    p.id   AS person_id,
    p.name AS name,
    COALESCE(d.current_rank, o.rank)             AS current_rank,
    COALESCE(d.current_duty_title, o.duty_title) AS current_duty_title,
    d.career_start_date,
    d.career_end_date
FROM people p
LEFT JOIN astronaut_details d ON d.person_id = p.id
LEFT JOIN astronaut_duties  o ON o.person_id = p.id AND o.duty_end_date IS NULL`

func (r *personRepo) GetPersonAstronautByName(ctx context.Context, name string) (*model.PersonAstronaut, error) {
	var row model.PersonAstronaut
	err := r.db.WithContext(ctx).
		Raw(personAstronautSelect+` WHERE p.name = ?`, name).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	if row.PersonID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &row, nil
}

func (r *personRepo) ListPersonAstronauts(ctx context.Context) ([]model.PersonAstronaut, error) {
	var rows []model.PersonAstronaut
	err := r.db.WithContext(ctx).
		Raw(personAstronautSelect+`
WHERE d.id IS NOT NULL
   OR EXISTS (SELECT 1 FROM astronaut_duties ad WHERE ad.person_id = p.id)
ORDER BY p.name ASC`).
		Scan(&rows).Error
	return rows, err
}
