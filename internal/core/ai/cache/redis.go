package cache

import (
	"context"
	"fmt"

	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisCache Redis 快取後端
type redisCache struct {
	client *redis.Client
	config *config.Config
}

// newRedisCache 創建 Redis 快取
func newRedisCache(cfg *config.Config) (*redisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Cache.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 快取已初始化",
		zap.String("addr", cfg.Cache.RedisAddr),
		zap.Duration("存活時間", cfg.Cache.TTL),
	)

	return &redisCache{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取快取
func (c *redisCache) Get(ctx context.Context, prompt string) (string, error) {
	key := c.generateKey(prompt)

	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheMiss
		}
		common.LogError("Redis 讀取失敗", zap.Error(err))
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return value, nil
}

// Set 設置快取
func (c *redisCache) Set(ctx context.Context, prompt, value string) error {
	key := c.generateKey(prompt)

	if err := c.client.Set(ctx, key, value, c.config.Cache.TTL).Err(); err != nil {
		common.LogError("Redis 寫入失敗", zap.Error(err))
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// generateKey 生成快取鍵
func (c *redisCache) generateKey(prompt string) string {
	return fmt.Sprintf("generation:%s", hashPrompt(prompt))
}

// Close 關閉 Redis 連線
func (c *redisCache) Close() error {
	return c.client.Close()
}
