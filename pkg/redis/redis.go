package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/HarringtonR/stargate-api/config"
)

// Client Redis 客户端封装
// 当前用于花名册查询缓存与接口限流；后续可扩展分布式锁等场景
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient 创建 Redis 连接并执行 Ping 健康检查
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 连接失败: %w", err)
	}

	logger.Info("Redis 连接成功", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── 查询缓存 ──

const cachePrefix = "stargate:cache:"

// GetCache 读取缓存值；键不存在时返回 ("", false, nil)
func (c *Client) GetCache(ctx context.Context, key string) (string, bool, error) {
	val, err := c.rdb.Get(ctx, cachePrefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

// SetCache 写入缓存值
func (c *Client) SetCache(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.rdb.Set(ctx, cachePrefix+key, value, ttl).Err()
}

// DeleteCache 删除缓存键（写操作后失效用）
func (c *Client) DeleteCache(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = cachePrefix + k
	}
	return c.rdb.Del(ctx, full...).Err()
}

// ── 接口限流 ──

// CheckRateLimit 固定窗口限流：窗口内计数超过 limit 返回 false
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close 关闭 Redis 连接
func (c *Client) Close() error {
	return c.rdb.Close()
}
