package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
)

// AstronautDutyRepository 航天任务台账数据访问接口
type AstronautDutyRepository interface {
	Create(ctx context.Context, duty *model.AstronautDuty) error
	GetByID(ctx context.Context, id int64) (*model.AstronautDuty, error)
	Update(ctx context.Context, duty *model.AstronautDuty) error
	// GetOpenDuty 最近开始的在任记录；不存在时返回 (nil, nil)
	GetOpenDuty(ctx context.Context, personID int64) (*model.AstronautDuty, error)
	// ListOpenDuties 该人员全部在任记录
	ListOpenDuties(ctx context.Context, personID int64) ([]model.AstronautDuty, error)
	// GetLatestClosedDuty 结束日期最晚的已结束记录；不存在时返回 (nil, nil)
	GetLatestClosedDuty(ctx context.Context, personID int64) (*model.AstronautDuty, error)
	// GetByPersonAndDate 按人员与开始日期（日粒度）查找；不存在时返回 (nil, nil)
	GetByPersonAndDate(ctx context.Context, personID int64, startDate time.Time) (*model.AstronautDuty, error)
	// ListByPerson 该人员全部记录，按开始日期倒序
	ListByPerson(ctx context.Context, personID int64) ([]model.AstronautDuty, error)
	// CountOtherOpenDuties 统计该人员除 excludeID 外的在任记录数
	CountOtherOpenDuties(ctx context.Context, personID, excludeID int64) (int64, error)
}

// astronautDutyRepo AstronautDutyRepository 的 GORM 实现
type astronautDutyRepo struct {
	db *gorm.DB
}

// NewAstronautDutyRepo 创建 AstronautDutyRepository 实例
func NewAstronautDutyRepo(db *gorm.DB) AstronautDutyRepository {
	return &astronautDutyRepo{db: db}
}

func (r *astronautDutyRepo) Create(ctx context.Context, duty *model.AstronautDuty) error {
	return r.db.WithContext(ctx).Create(duty).Error
}

func (r *astronautDutyRepo) GetByID(ctx context.Context, id int64) (*model.AstronautDuty, error) {
	var duty model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&duty).Error
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *astronautDutyRepo) Update(ctx context.Context, duty *model.AstronautDuty) error {
	return r.db.WithContext(ctx).Save(duty).Error
}

func (r *astronautDutyRepo) GetOpenDuty(ctx context.Context, personID int64) (*model.AstronautDuty, error) {
	var duty model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND duty_end_date IS NULL", personID).
		Order("duty_start_date DESC").
		First(&duty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *astronautDutyRepo) ListOpenDuties(ctx context.Context, personID int64) ([]model.AstronautDuty, error) {
	var duties []model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND duty_end_date IS NULL", personID).
		Order("duty_start_date DESC").
		Find(&duties).Error
	return duties, err
}

func (r *astronautDutyRepo) GetLatestClosedDuty(ctx context.Context, personID int64) (*model.AstronautDuty, error) {
	var duty model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND duty_end_date IS NOT NULL", personID).
		Order("duty_end_date DESC").
		First(&duty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *astronautDutyRepo) GetByPersonAndDate(ctx context.Context, personID int64, startDate time.Time) (*model.AstronautDuty, error) {
	var duty model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND duty_start_date = ?", personID, model.NormalizeDate(startDate)).
		First(&duty).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &duty, nil
}

func (r *astronautDutyRepo) ListByPerson(ctx context.Context, personID int64) ([]model.AstronautDuty, error) {
	var duties []model.AstronautDuty
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("duty_start_date DESC").
		Find(&duties).Error
	return duties, err
}

func (r *astronautDutyRepo) CountOtherOpenDuties(ctx context.Context, personID, excludeID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.AstronautDuty{}).
		Where("person_id = ? AND id <> ? AND duty_end_date IS NULL", personID, excludeID).
		Count(&count).Error
	return count, err
}
