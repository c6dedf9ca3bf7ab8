package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chuckle-chow/internal/core/ai/service"
	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/infrastructure/store"

	"github.com/gin-gonic/gin"
	_ "github.com/mattn/go-sqlite3"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		App: config.AppConfig{Debug: true, Version: "test"},
		XAI: config.XAIConfig{
			Model:       "grok-beta",
			MaxTokens:   6000,
			Temperature: 0.7,
			Timeout:     5 * time.Second,
		},
		RateLimit: config.RateLimitConfig{
			Enabled:        true,
			Requests:       100,
			RatingRequests: 50,
			Window:         time.Minute,
		},
	}

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	st, err := store.NewWithDB(db)
	if err != nil {
		t.Fatalf("init store: %v", err)
	}

	aiSvc := service.NewService(cfg, nil)
	t.Cleanup(func() { aiSvc.Close() })

	router, err := SetupRouter(cfg, st, aiSvc)
	if err != nil {
		t.Fatalf("setup router: %v", err)
	}
	return router
}

func TestWelcomeEndpoint(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["message"] != "Welcome to the Chuckle & Chow API" {
		t.Fatalf("unexpected welcome message %q", body["message"])
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := setupTestRouter(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d: %s", path, w.Code, w.Body.String())
		}
	}
}

func TestTimeoutMiddlewareKeepsHandlerResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}

	r := gin.New()
	r.Use(timeoutMiddleware(cfg, 5*time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
		c.String(http.StatusOK, "handler response")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected handler's 200, got %d", w.Code)
	}
	if w.Body.String() != "handler response" {
		t.Fatalf("timeout middleware corrupted the body: %q", w.Body.String())
	}
}

func TestTimeoutMiddlewareWritesWhenHandlerDidNot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}

	r := gin.New()
	r.Use(timeoutMiddleware(cfg, 5*time.Millisecond))
	r.GET("/slow", func(c *gin.Context) {
		<-c.Request.Context().Done()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))
	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["code"] != "REQUEST_TIMEOUT" {
		t.Fatalf("unexpected timeout payload: %v", body)
	}
}

func TestIngredientsThroughRouter(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ingredients", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var pairs map[string][]string
	if err := json.Unmarshal(w.Body.Bytes(), &pairs); err != nil {
		t.Fatalf("decode pairs: %v", err)
	}
	if len(pairs) == 0 {
		t.Fatal("expected seeded flavor pairs")
	}
}
