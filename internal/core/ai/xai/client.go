package xai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.x.ai/v1"

// Client xAI 文字補全客戶端
// 單次同步請求，固定模型參數，不串流、不自動重試
type Client struct {
	config *config.Config
	client *resty.Client
}

// Message 消息結構
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request 表示補全 API 請求
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Stream      bool      `json:"stream"`
}

// Response 補全 API 響應結構
type Response struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
}

// Choice 選擇結構
type Choice struct {
	Message Message `json:"message"`
}

// NewClient 創建新的 xAI 客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(cfg.XAI.Timeout).
		SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.XAI.APIKey)).
		SetHeader("Content-Type", "application/json")

	return &Client{
		config: cfg,
		client: client,
	}
}

// SetBaseURL 覆寫 API 位址（測試用）
func (c *Client) SetBaseURL(url string) {
	c.client.SetBaseURL(url)
}

// Complete 送出提示詞並取回補全文字
// 逾時或任何傳輸 / HTTP 錯誤一律視為生成失敗；空白補全是另一種失敗
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	req := &Request{
		Model: c.config.XAI.Model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		Temperature: c.config.XAI.Temperature,
		MaxTokens:   c.config.XAI.MaxTokens,
		Stream:      false,
	}

	common.LogInfo("Sending request to xAI",
		zap.String("model", req.Model),
		zap.Int("max_tokens", req.MaxTokens),
	)

	start := time.Now()
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/chat/completions")
	common.LogUpstreamCall(req.Model, time.Since(start), err, "")

	if err != nil {
		return "", common.NewUpstreamError(
			fmt.Sprintf("failed to reach generation service: %v", err), err)
	}

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		common.LogError("xAI API 回傳錯誤狀態",
			zap.Int("status_code", resp.StatusCode()),
			zap.String("model", req.Model),
			zap.String("response", resp.String()),
		)
		return "", common.NewUpstreamError(
			fmt.Sprintf("generation service error (status %d)", resp.StatusCode()), nil)
	}

	var result Response
	if err := common.ParseJSONBytes(resp.Body(), &result); err != nil {
		common.LogError("解析 xAI 回應失敗",
			zap.Error(err),
			zap.String("model", req.Model),
		)
		return "", common.NewUpstreamError("failed to parse generation response", err)
	}

	if len(result.Choices) == 0 {
		return "", common.NewUpstreamError("empty choices in generation response", nil)
	}

	// 空白文字與傳輸失敗是不同的失敗型態
	content := result.Choices[0].Message.Content
	if content == "" {
		common.LogError("xAI 回應內容為空",
			zap.String("model", req.Model),
		)
		return "", common.NewUpstreamError("empty response from generation service", nil)
	}

	common.LogInfo("Successfully generated text from xAI",
		zap.String("model", req.Model),
		zap.Int("content_length", len(content)),
	)
	return content, nil
}

// Close 關閉客戶端
func (c *Client) Close() error {
	c.client.GetClient().CloseIdleConnections()
	return nil
}
