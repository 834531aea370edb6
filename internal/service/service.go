package service

import (
	"go.uber.org/zap"

	"github.com/HarringtonR/stargate-api/config"
	"github.com/HarringtonR/stargate-api/internal/repository"
	"github.com/HarringtonR/stargate-api/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Person        PersonService
	AstronautDuty AstronautDutyService
	Export        ExportService
	ProcessLog    ProcessLogService
}

// NewService 创建 Service 聚合
// rdb 允许为 nil：缓存整体旁路，业务功能不受影响
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	cache := newRosterCache(rdb, cfg.Redis.CacheTTL, logger)

	return &Service{
		Person:        NewPersonService(repo, cache, logger),
		AstronautDuty: NewAstronautDutyService(repo, cache, logger),
		Export:        NewExportService(repo, logger),
		ProcessLog:    NewProcessLogService(repo, logger),
	}
}
