package service

import (
	"context"
	"strings"

	"chuckle-chow/internal/core/ai/cache"
	"chuckle-chow/internal/core/ai/xai"
	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/pkg/common"
)

// Service 文字生成服務
// 包裝 xAI 客戶端，外加生成結果快取
type Service struct {
	config *config.Config
	client *xai.Client
	cache  cache.Cache
}

// NewService 創建生成服務
func NewService(cfg *config.Config, c cache.Cache) *Service {
	return &Service{
		config: cfg,
		client: xai.NewClient(cfg),
		cache:  c,
	}
}

// Client 回傳底層 xAI 客戶端（測試時覆寫 base URL 用）
func (s *Service) Client() *xai.Client {
	return s.client
}

// ProcessRequest 統一對外方法
// 缺少 API 憑證屬於設定錯誤，在任何網路呼叫前偵測並回報
func (s *Service) ProcessRequest(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(s.config.XAI.APIKey) == "" {
		return "", common.NewConfigurationError("API key not configured")
	}

	prompt = strings.TrimSpace(prompt)

	// 檢查快取
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, prompt); err == nil && val != "" {
			return val, nil
		}
	}

	content, err := s.client.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, prompt, content)
	}

	return content, nil
}

// Close 關閉生成服務
func (s *Service) Close() error {
	return s.client.Close()
}
