package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prioboard/prioboard/internal/config"
	"github.com/prioboard/prioboard/internal/middleware"
)

func rateLimitTestServer(cfg config.RateLimitConfig, t *testing.T) *echo.Echo {
	e := echo.New()
	e.Use(identify)
	e.Use(middleware.RateLimit(cfg, testRedis(t)))
	e.GET("/items", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestRateLimitRejectsWhenBucketEmpty(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
	e := rateLimitTestServer(cfg, t)

	for i := 0; i < cfg.Capacity; i++ {
		rec := do(e, "GET", "/items", "alice")
		require.Equal(t, 200, rec.Code, "request %d should pass", i+1)
		assert.Equal(t, "2", rec.Header().Get("X-RateLimit-Limit"))
	}

	rec := do(e, "GET", "/items", "alice")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "too_many_requests")
}

func TestRateLimitBucketsPerUser(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            10 * time.Minute,
		Prefix:         "rl",
	}
	e := rateLimitTestServer(cfg, t)

	require.Equal(t, 200, do(e, "GET", "/items", "alice").Code)
	require.Equal(t, http.StatusTooManyRequests, do(e, "GET", "/items", "alice").Code)

	// A different user draws from their own bucket.
	assert.Equal(t, 200, do(e, "GET", "/items", "bob").Code)
}

func TestRateLimitNilClientPassthrough(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1,
		RefillInterval: time.Minute, TTL: 10 * time.Minute, Prefix: "rl"}

	e := echo.New()
	e.Use(middleware.RateLimit(cfg, nil))
	e.GET("/items", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for i := 0; i < 5; i++ {
		require.Equal(t, 200, do(e, "GET", "/items", "").Code)
	}
}
