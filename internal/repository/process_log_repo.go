package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/HarringtonR/stargate-api/internal/model"
)

// ProcessLogRepository 过程日志数据访问接口
type ProcessLogRepository interface {
	Create(ctx context.Context, log *model.ProcessLog) error
	// ListRecent 按时间倒序取最近 limit 条；level 为空时不过滤级别
	ListRecent(ctx context.Context, level string, limit int) ([]model.ProcessLog, error)
}

// processLogRepo ProcessLogRepository 的 GORM 实现
type processLogRepo struct {
	db *gorm.DB
}

// NewProcessLogRepo 创建 ProcessLogRepository 实例
func NewProcessLogRepo(db *gorm.DB) ProcessLogRepository {
	return &processLogRepo{db: db}
}

func (r *processLogRepo) Create(ctx context.Context, log *model.ProcessLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *processLogRepo) ListRecent(ctx context.Context, level string, limit int) ([]model.ProcessLog, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	db := r.db.WithContext(ctx).Model(&model.ProcessLog{})
	if level != "" {
		db = db.Where("level = ?", level)
	}

	var logs []model.ProcessLog
	err := db.Order("timestamp DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
