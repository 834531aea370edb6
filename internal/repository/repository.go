package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Person          PersonRepository
	AstronautDuty   AstronautDutyRepository
	AstronautDetail AstronautDetailRepository
	ProcessLog      ProcessLogRepository

	db *gorm.DB
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Person:          NewPersonRepo(db),
		AstronautDuty:   NewAstronautDutyRepo(db),
		AstronautDetail: NewAstronautDetailRepo(db),
		ProcessLog:      NewProcessLogRepo(db),
		db:              db,
	}
}

// Transaction 在单个数据库事务内执行 fn
// fn 收到的聚合绑定到同一事务，命令内的全部写操作要么同时提交要么同时回滚
// 未持有底层连接时（单元测试的内存仓库）直接执行 fn
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepository(tx))
	})
}
