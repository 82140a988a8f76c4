package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/flexfit/fitness-api/internal/api"
	"github.com/flexfit/fitness-api/internal/core/ports"
	"github.com/flexfit/fitness-api/internal/infrastructure/config"
	mongodb "github.com/flexfit/fitness-api/internal/infrastructure/db/mongo"
	redisdb "github.com/flexfit/fitness-api/internal/infrastructure/db/redis"
	"github.com/flexfit/fitness-api/internal/infrastructure/queue"
	"github.com/flexfit/fitness-api/internal/infrastructure/webhook"
	"github.com/flexfit/fitness-api/pkg/logger"
)

// @title        Fitness API
// @version      1.0
// @description  Fitness plan management backend with identity-provider webhook sync.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	userRepo := mongodb.NewUserRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure user indexes")
	}
	if err := planRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure plan indexes")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit trail workers ---
	eventRepo := mongodb.NewEventRepository(db)
	dispatcher := queue.NewAuditDispatcher(cfg.AuditWorkers, eventRepo, log)
	dispatcher.Start(ctx)

	// --- Webhook signature verification ---
	// A nil verifier keeps the route up but failing loudly, so a missing
	// secret shows in the provider's delivery log rather than as dropped
	// users.
	var verifier ports.SignatureVerifier
	if cfg.ClerkWebhookSecret != "" {
		v, err := webhook.NewSvixVerifier(cfg.ClerkWebhookSecret)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid webhook secret")
		}
		verifier = v
	} else {
		log.Warn().Msg("CLERK_WEBHOOK_SECRET not set, webhook deliveries will be rejected")
	}

	e := api.NewRouter(db, rdb, verifier, dispatcher, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
