package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"chuckle-chow/internal/infrastructure/config"
	"chuckle-chow/internal/pkg/common"
)

func testCacheConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			Backend:         "memory",
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestNewDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}
	if c := New(cfg); c != nil {
		t.Fatal("disabled cache must be nil")
	}
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	m := newMemoryCache(testCacheConfig(10, time.Minute))
	defer m.Close()
	ctx := context.Background()

	if _, err := m.Get(ctx, "prompt"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected cache miss, got %v", err)
	}

	if err := m.Set(ctx, "prompt", "recipe text"); err != nil {
		t.Fatalf("set: %v", err)
	}
	val, err := m.Get(ctx, "prompt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if val != "recipe text" {
		t.Fatalf("unexpected value %q", val)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	m := newMemoryCache(testCacheConfig(10, 10*time.Millisecond))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "prompt", "recipe text"); err != nil {
		t.Fatalf("set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)

	if _, err := m.Get(ctx, "prompt"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected expiry miss, got %v", err)
	}
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	m := newMemoryCache(testCacheConfig(2, time.Minute))
	defer m.Close()
	ctx := context.Background()

	if err := m.Set(ctx, "a", "1"); err != nil {
		t.Fatalf("set a: %v", err)
	}
	if err := m.Set(ctx, "b", "2"); err != nil {
		t.Fatalf("set b: %v", err)
	}
	// Touch "a" so "b" becomes the eviction candidate.
	if _, err := m.Get(ctx, "a"); err != nil {
		t.Fatalf("get a: %v", err)
	}

	if err := m.Set(ctx, "c", "3"); err != nil {
		t.Fatalf("set c after eviction: %v", err)
	}
	if _, err := m.Get(ctx, "b"); !errors.Is(err, common.ErrCacheMiss) {
		t.Fatalf("expected b evicted, got %v", err)
	}
	if _, err := m.Get(ctx, "a"); err != nil {
		t.Fatalf("a should survive eviction: %v", err)
	}
}
