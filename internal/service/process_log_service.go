package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/HarringtonR/stargate-api/internal/model"
	"github.com/HarringtonR/stargate-api/internal/repository"
)

// ProcessLogService 过程日志（审计落库）业务接口
type ProcessLogService interface {
	// Record 落库一条过程日志；尽力而为，失败只记应用日志，绝不影响业务请求
	Record(ctx context.Context, level, message, method, path, requestID, requestData string)
	ListRecent(ctx context.Context, level string, limit int) ([]model.ProcessLog, error)
}

type processLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProcessLogService 创建 ProcessLogService 实例
func NewProcessLogService(repo *repository.Repository, logger *zap.Logger) ProcessLogService {
	return &processLogService{repo: repo, logger: logger}
}

func (s *processLogService) Record(ctx context.Context, level, message, method, path, requestID, requestData string) {
	// 截断超长字段，与表结构上限保持一致
	if len(message) > 1000 {
		message = message[:1000]
	}
	if len(requestData) > 2000 {
		requestData = requestData[:2000]
	}

	entry := &model.ProcessLog{
		Timestamp:   time.Now().UTC(),
		Level:       level,
		Message:     message,
		Method:      method,
		Path:        path,
		RequestID:   requestID,
		RequestData: requestData,
	}

	if err := s.repo.ProcessLog.Create(ctx, entry); err != nil {
		s.logger.Warn("过程日志落库失败", zap.Error(err))
	}
}

func (s *processLogService) ListRecent(ctx context.Context, level string, limit int) ([]model.ProcessLog, error) {
	logs, err := s.repo.ProcessLog.ListRecent(ctx, level, limit)
	if err != nil {
		s.logger.Error("查询过程日志失败", zap.Error(err))
		return nil, err
	}
	return logs, nil
}
