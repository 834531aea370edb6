package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
)

// AstronautDetailRepository 航天员状态投影数据访问接口
type AstronautDetailRepository interface {
	Create(ctx context.Context, detail *model.AstronautDetail) error
	// GetByPersonID 按人员查投影；不存在时返回 (nil, nil)
	GetByPersonID(ctx context.Context, personID int64) (*model.AstronautDetail, error)
	Update(ctx context.Context, detail *model.AstronautDetail) error
}

// astronautDetailRepo AstronautDetailRepository 的 GORM 实现
type astronautDetailRepo struct {
	db *gorm.DB
}

// NewAstronautDetailRepo 创建 AstronautDetailRepository 实例
func NewAstronautDetailRepo(db *gorm.DB) AstronautDetailRepository {
	return &astronautDetailRepo{db: db}
}

func (r *astronautDetailRepo) Create(ctx context.Context, detail *model.AstronautDetail) error {
	return r.db.WithContext(ctx).Create(detail).Error
}

func (r *astronautDetailRepo) GetByPersonID(ctx context.Context, personID int64) (*model.AstronautDetail, error) {
	var detail model.AstronautDetail
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		First(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *astronautDetailRepo) Update(ctx context.Context, detail *model.AstronautDetail) error {
	return r.db.WithContext(ctx).Save(detail).Error
}
