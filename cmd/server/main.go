package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/prioboard/prioboard/internal/config"
	"github.com/prioboard/prioboard/internal/database"
	"github.com/prioboard/prioboard/internal/handler"
	"github.com/prioboard/prioboard/internal/queue"
	"github.com/prioboard/prioboard/internal/repository"
	"github.com/prioboard/prioboard/internal/router"
	"github.com/prioboard/prioboard/internal/seed"
	"github.com/prioboard/prioboard/internal/service"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	var (
		store  repository.Store
		tokens repository.TokenStore
	)
	switch cfg.StoreDriver {
	case "mysql":
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		ms := repository.NewMySQLStore(db)
		store, tokens = ms, ms
	case "memory", "":
		ms := repository.NewMemoryStore()
		store, tokens = ms, ms
	default:
		log.Fatalf("unknown STORE_DRIVER: %q", cfg.StoreDriver)
	}

	ctx := context.Background()
	if err := seed.EnsureDefaults(ctx, store, cfg.BcryptCost); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}
	if cfg.SeedDemo {
		admin, err := store.GetUserByUsername(ctx, "admin")
		if err != nil {
			log.Fatalf("load default user: %v", err)
		}
		if err := seed.Demo(ctx, store, admin.ID); err != nil {
			log.Fatalf("seed demo data: %v", err)
		}
	}

	// Nil when Redis is unreachable; caching and rate limiting degrade to
	// no-ops in that case.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, cache and rate limiting disabled")
	}

	go queue.StartActivityConsumer()

	e := echo.New()
	e.HideBanner = true
	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(cfg, store, tokens),
		Features: handler.NewFeatureHandler(store, service.PublishFeatureActivity),
		Criteria: handler.NewCriteriaHandler(store),
		Comments: handler.NewCommentHandler(store, store),
	}, cfg, rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
