// Command api runs the bookstore catalog service.
//
// @title        Bookstore Catalog API
// @version      1.0
// @description  Book catalog with user-submitted reviews.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/bookhaven/catalog-api/internal/api"
	"github.com/bookhaven/catalog-api/internal/api/handler"
	"github.com/bookhaven/catalog-api/internal/api/metrics"
	"github.com/bookhaven/catalog-api/internal/core/domain"
	"github.com/bookhaven/catalog-api/internal/core/ports"
	"github.com/bookhaven/catalog-api/internal/core/service"
	"github.com/bookhaven/catalog-api/internal/infrastructure/config"
	mongodb "github.com/bookhaven/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bookhaven/catalog-api/internal/infrastructure/db/redis"
	"github.com/bookhaven/catalog-api/internal/infrastructure/queue"
	"github.com/bookhaven/catalog-api/internal/infrastructure/seed"
	"github.com/bookhaven/catalog-api/internal/infrastructure/store/memory"
	"github.com/bookhaven/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// seedUsers are the bootstrap accounts present before anyone registers.
// Further users come in through /register.
var seedUsers = []domain.User{
	{Username: "user1", Email: "user1@example.com", Password: "password1"},
	{Username: "user2", Email: "user2@example.com", Password: "password2"},
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET is empty, bearer tokens are signed with an empty key")
	}

	// --- Stores ---
	catalog := memory.NewCatalogStore()
	users := memory.NewUserDirectory(seedUsers)

	loadCatalog(ctx, cfg, catalog)

	// --- Optional login throttle ---
	var throttle handler.LoginThrottle
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unavailable, login throttle disabled")
		} else {
			redisClient = client
			throttle = redisdb.NewLoginThrottle(client, cfg.Redis.LoginMaxAttempts)
			defer func() { _ = client.Close() }()
		}
	}

	// --- Review activity trail ---
	dispatcher := queue.NewDispatcher(0, queue.NewAuditSink(log), log)
	dispatcher.Start(ctx)

	// --- Services ---
	catalogService := service.NewCatalogService(catalog)
	userService := service.NewUserService(users, cfg.JWTSecret, 24*time.Hour, log)
	reviewService := service.NewReviewService(catalog, users, dispatcher, log)

	e := api.NewRouter(api.Dependencies{
		Catalog:   catalogService,
		Reviews:   reviewService,
		Users:     userService,
		Throttle:  throttle,
		Store:     catalog,
		Redis:     redisClient,
		JWTSecret: cfg.JWTSecret,
		Log:       log,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Int("books", catalog.Len()).Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// loadCatalog seeds the in-memory catalog from the configured source.
// Any failure is logged and leaves the catalog empty; the service starts
// regardless.
func loadCatalog(ctx context.Context, cfg *config.Config, catalog *memory.CatalogStore) {
	log := logger.Get()

	var src ports.CatalogSeed
	switch cfg.Seed.Source {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Warn().Err(err).Msg("mongo seed source unavailable, starting with empty catalog")
			return
		}
		defer func() { _ = client.Disconnect(ctx) }()
		src = mongodb.NewCatalogSeedSource(db)
	default:
		src = seed.NewFileSource(cfg.Seed.File)
	}

	books, err := src.Load(ctx)
	if err != nil {
		log.Warn().Err(err).Str("source", cfg.Seed.Source).Msg("catalog seed failed, starting with empty catalog")
		return
	}

	if err := catalog.Replace(ctx, books); err != nil {
		log.Warn().Err(err).Msg("catalog replace failed, starting with empty catalog")
		return
	}
	metrics.CatalogSize.Set(float64(catalog.Len()))
	log.Info().Int("books", catalog.Len()).Str("source", cfg.Seed.Source).Msg("catalog seeded")
}
