package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pulseboard/dashboard-api/internal/api"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
	"github.com/pulseboard/dashboard-api/internal/core/service"
	"github.com/pulseboard/dashboard-api/internal/infrastructure/config"
	memorydb "github.com/pulseboard/dashboard-api/internal/infrastructure/db/memory"
	mongodb "github.com/pulseboard/dashboard-api/internal/infrastructure/db/mongo"
	redisdb "github.com/pulseboard/dashboard-api/internal/infrastructure/db/redis"
	"github.com/pulseboard/dashboard-api/pkg/logger"
)

// @title           Pulseboard Dashboard API
// @version         1.0
// @description     Role-gated analytics dashboard backend.
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	var (
		store ports.UserStore
		db    *mongo.Database
	)
	switch cfg.Store.Backend {
	case "mongo":
		client, database, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connect failed")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		userStore := mongodb.NewUserStore(database)
		if err := userStore.EnsureIndexes(ctx); err != nil {
			log.Fatal().Err(err).Msg("mongo index setup failed")
		}
		store = userStore
		db = database

	default:
		userStore := memorydb.NewUserStore()
		if cfg.Store.SeedDemo {
			if err := memorydb.SeedDemoUsers(ctx, userStore, hasher); err != nil {
				log.Fatal().Err(err).Msg("demo user seeding failed")
			}
			log.Info().Msg("demo users seeded")
		}
		store = userStore
	}

	var (
		rdb   *redis.Client
		cache service.DashboardCache
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connect failed")
		}
		defer rdb.Close()
		cache = redisdb.NewDashboardCache(rdb)
	}

	authService := service.NewAuthService(store, hasher, tokens, log)
	analytics := service.NewAnalyticsService(cache, log)

	e := api.NewRouter(api.RouterConfig{
		Log:            log,
		AuthService:    authService,
		Analytics:      analytics,
		Tokens:         tokens,
		Store:          store,
		Mongo:          db,
		Redis:          rdb,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Backend).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
