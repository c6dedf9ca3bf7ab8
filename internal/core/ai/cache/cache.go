package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/pkg/common"

	"go.uber.org/zap"
)

// Cache 生成結果快取
// 鍵為提示詞，值為生成的食譜文字
type Cache interface {
	Get(ctx context.Context, prompt string) (string, error)
	Set(ctx context.Context, prompt, value string) error
	Close() error
}

// New 依設定建立快取後端，快取停用時回傳 nil
func New(cfg *config.Config) Cache {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	switch cfg.Cache.Backend {
	case "redis":
		c, err := newRedisCache(cfg)
		if err != nil {
			common.LogWarn("Redis 快取初始化失敗，改用記憶體快取",
				zap.Error(err),
				zap.String("addr", cfg.Cache.RedisAddr),
			)
			return newMemoryCache(cfg)
		}
		return c
	default:
		return newMemoryCache(cfg)
	}
}

// hashPrompt 計算提示詞的 SHA-256 哈希值，作為快取鍵
func hashPrompt(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return hex.EncodeToString(hash[:])
}
