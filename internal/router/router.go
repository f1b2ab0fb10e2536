// Package router wires handlers and middleware onto an Echo instance.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/prioboard/prioboard/internal/config"
	"github.com/prioboard/prioboard/internal/handler"
	"github.com/prioboard/prioboard/internal/middleware"
)

// Handlers collects everything the router needs to register.
type Handlers struct {
	Auth     *handler.AuthHandler
	Features *handler.FeatureHandler
	Criteria *handler.CriteriaHandler
	Comments *handler.CommentHandler
}

// Register sets up the full route table. The health check and the auth
// endpoints are open; everything under /api besides /api/auth requires a
// valid bearer token. rdb may be nil, which disables caching and rate
// limiting.
func Register(e *echo.Echo, h Handlers, cfg config.Config, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)

	auth := e.Group("/api/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", h.Auth.Logout)

	api := e.Group("/api")
	api.Use(middleware.JWTAuth(cfg.JWTSecret))
	api.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))
	api.Use(middleware.ResponseCache(config.LoadCacheConfig(), rdb))

	api.GET("/me", h.Auth.Me)
	api.GET("/users", h.Auth.ListUsers)

	api.GET("/features", h.Features.List)
	api.POST("/features", h.Features.Create)
	api.GET("/features/:id", h.Features.Get)
	api.PATCH("/features/:id", h.Features.Update)
	api.DELETE("/features/:id", h.Features.Delete)

	api.GET("/scoring-criteria", h.Criteria.List)
	api.POST("/scoring-criteria", h.Criteria.Create)
	api.PATCH("/scoring-criteria/:id", h.Criteria.Update)

	api.GET("/features/:id/comments", h.Comments.List)
	api.POST("/features/:id/comments", h.Comments.Create)
}
