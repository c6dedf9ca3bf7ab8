package api

import (
	"context"
	"net/http"
	"time"

	"chuckle-chow/internal/api/handlers/health"
	recipeHandler "chuckle-chow/internal/api/handlers/recipe"
	"chuckle-chow/internal/api/middleware"
	"chuckle-chow/internal/core/ai/service"
	recipeService "chuckle-chow/internal/core/recipe"
	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/infrastructure/store"
	"chuckle-chow/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 整體請求超時，須大於生成服務的 30 秒上限
	timeoutDuration = 60 * time.Second
	// 請求體大小限制 (1MB)，生成請求只含食材名稱與文字
	maxBodySize = 1 << 20
)

// timeoutMiddleware 限制單一請求的整體處理時間並注入配置
// 處理器若已寫出回應（逾時路徑上通常已輸出錯誤載荷），不再覆寫
func timeoutMiddleware(cfg *config.Config, d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", c.GetHeader("X-Request-ID")),
				zap.Duration("timeout", d),
			)
			if !c.Writer.Written() {
				c.JSON(http.StatusGatewayTimeout, gin.H{
					"error": "Request timeout",
					"code":  "REQUEST_TIMEOUT",
				})
			}
			c.Abort()
			return
		}
	}
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, st *store.Store, aiService *service.Service) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// 基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制與去重
	router.Use(middleware.BodySizeLimit(maxBodySize))
	router.Use(middleware.Deduplication(cfg))

	// 全局中間件：超時與配置注入
	router.Use(timeoutMiddleware(cfg, timeoutDuration))

	// 初始化服務
	generator := recipeService.NewGenerator(cfg, st, aiService)
	ratings := recipeService.NewRatingService(st)
	handler := recipeHandler.NewHandler(generator, ratings, st)

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck(st))
	router.GET("/live", health.LivenessCheck)

	// 速率限制：評分端點較嚴格，其他端點共用一般額度
	generalLimit := func() gin.HandlerFunc {
		if !cfg.RateLimit.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	ratingLimit := func() gin.HandlerFunc {
		if !cfg.RateLimit.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimit(cfg.RateLimit.RatingRequests, cfg.RateLimit.Window)
	}

	// API 歡迎頁
	router.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Chuckle & Chow API"})
	})

	// 食譜相關路由，路徑沿用線上契約
	router.POST("/generate_recipe", generalLimit(), handler.HandleGenerate)
	router.POST("/elucidate_recipe", generalLimit(), handler.HandleElucidate)
	router.GET("/ingredients", generalLimit(), handler.HandleIngredients)
	router.POST("/rate_recipe", ratingLimit(), handler.HandleRate)
	router.GET("/recipe_comments", generalLimit(), handler.HandleComments)
	router.GET("/share_recipe", generalLimit(), handler.HandleShare)

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
		zap.Duration("timeout", timeoutDuration),
		zap.Int64("max_body_size", maxBodySize),
	)

	return router, nil
}
