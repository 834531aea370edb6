package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/HarringtonR/stargate-api/internal/dto"
	"github.com/HarringtonR/stargate-api/pkg/redis"
)

const rosterCacheKey = "people:roster"

// rosterCache 花名册查询缓存
// Redis 不可用（rdb 为 nil）时整体旁路，读写均为 no-op
// 任何人员或任务写操作之后必须调用 Invalidate
type rosterCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func newRosterCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *rosterCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &rosterCache{rdb: rdb, ttl: ttl, logger: logger}
}

// Get 读取缓存的花名册；未命中或缓存异常返回 (nil, false)
func (c *rosterCache) Get(ctx context.Context) ([]dto.PersonAstronautResponse, bool) {
	if c.rdb == nil {
		return nil, false
	}
	raw, ok, err := c.rdb.GetCache(ctx, rosterCacheKey)
	if err != nil {
		c.logger.Warn("读取花名册缓存失败", zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	var rows []dto.PersonAstronautResponse
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		c.logger.Warn("解析花名册缓存失败", zap.Error(err))
		return nil, false
	}
	return rows, true
}

// Set 写入花名册缓存（失败仅记日志）
func (c *rosterCache) Set(ctx context.Context, rows []dto.PersonAstronautResponse) {
	if c.rdb == nil {
		return
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.rdb.SetCache(ctx, rosterCacheKey, string(raw), c.ttl); err != nil {
		c.logger.Warn("写入花名册缓存失败", zap.Error(err))
	}
}

// Invalidate 使花名册缓存失效
func (c *rosterCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.DeleteCache(ctx, rosterCacheKey); err != nil {
		c.logger.Warn("失效花名册缓存失败", zap.Error(err))
	}
}
