package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"chuckle-chow/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func dedupRouter(window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{DedupWindow: window}
	r := gin.New()
	r.Use(Deduplication(cfg))
	r.POST("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func TestDeduplicationRejectsRepeatWithinWindow(t *testing.T) {
	r := dedupRouter(time.Minute)

	body := `{"ingredients":["repeat-window-probe-a"]}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
	if w.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("repeat within window should be rejected, got %d", w.Code)
	}
}

func TestDeduplicationIgnoresGET(t *testing.T) {
	r := dedupRouter(time.Minute)
	r.GET("/g", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/g", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET requests are never deduplicated, got %d", w.Code)
		}
	}
}

func TestDeduplicationConcurrentIdenticalRequests(t *testing.T) {
	r := dedupRouter(time.Minute)

	// Check and record share one critical section, so of N identical
	// bodies arriving at once exactly one may pass.
	body := `{"ingredients":["concurrent-dedup-a"]}`
	var passed int64
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body)))
			if w.Code == http.StatusOK {
				atomic.AddInt64(&passed, 1)
			}
		}()
	}
	wg.Wait()

	if passed != 1 {
		t.Fatalf("expected exactly one identical request to pass, got %d", passed)
	}
}
