package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chuckle-chow/internal/api"
	"chuckle-chow/internal/core/ai/cache"
	"chuckle-chow/internal/core/ai/service"
	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/infrastructure/store"
	"chuckle-chow/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	common.LogInfo("載入設定",
		zap.String("xai_model", cfg.XAI.Model),
		zap.String("store_path", cfg.Store.Path),
		zap.Bool("emoji", cfg.Recipe.Emoji),
	)

	// 開啟持久化儲存，首次啟動時建表並寫入種子資料
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		common.LogFatal("Failed to open store",
			zap.Error(err),
			zap.String("path", cfg.Store.Path),
		)
	}
	defer st.Close()

	// 初始化生成結果快取，關閉時為 nil
	cacheBackend := cache.New(cfg)
	if cacheBackend != nil {
		defer cacheBackend.Close()
	}

	// 初始化生成服務
	aiService := service.NewService(cfg, cacheBackend)
	defer aiService.Close()

	// 設置路由
	router, err := api.SetupRouter(cfg, st, aiService)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
			zap.Int("port", cfg.Server.Port),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
