package handler_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/prioboard/prioboard/internal/config"
	"github.com/prioboard/prioboard/internal/handler"
	"github.com/prioboard/prioboard/internal/repository"
	"github.com/prioboard/prioboard/internal/router"
)

// newTestServer wires the real route table against a fresh memory store.
// Redis is nil (cache and rate limiting off) and no event publisher is set.
func newTestServer(t *testing.T) (*echo.Echo, *repository.MemoryStore) {
	t.Helper()
	return newServerWithRedis(t, nil)
}

// newCachedTestServer is newTestServer with the response cache and rate
// limiter live against an in-process Redis.
func newCachedTestServer(t *testing.T) (*echo.Echo, *repository.MemoryStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return newServerWithRedis(t, rdb)
}

func newServerWithRedis(t *testing.T, rdb *redis.Client) (*echo.Echo, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	cfg := config.Config{
		Env:            "test",
		JWTSecret:      "test-secret",
		AccessTTLMin:   15,
		RefreshTTLDays: 7,
		BcryptCost:     4,
	}
	e := echo.New()
	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, store, store),
		Features: handler.NewFeatureHandler(store, nil),
		Criteria: handler.NewCriteriaHandler(store),
		Comments: handler.NewCommentHandler(store, store),
	}, cfg, rdb)
	return e, store
}

// doJSON performs one request against the test server. token may be empty
// for unauthenticated calls.
func doJSON(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// authTokens registers a user and returns its access and refresh tokens.
func authTokens(t *testing.T, e *echo.Echo, username string) (access, refresh string) {
	t.Helper()
	rec := doJSON(e, "POST", "/api/auth/register", "",
		`{"username":"`+username+`","password":"pw","name":"Test User"}`)
	require.Equal(t, 201, rec.Code, "register failed: %s", rec.Body.String())

	var resp struct {
		Access  struct{ Token string }
		Refresh struct{ Token string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Access.Token)
	require.NotEmpty(t, resp.Refresh.Token)
	return resp.Access.Token, resp.Refresh.Token
}
