package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/flexfit/fitness-api/docs"
	"github.com/flexfit/fitness-api/internal/api/handler"
	"github.com/flexfit/fitness-api/internal/api/middleware"
	"github.com/flexfit/fitness-api/internal/core/ports"
	"github.com/flexfit/fitness-api/internal/core/service"
	mongodb "github.com/flexfit/fitness-api/internal/infrastructure/db/mongo"
	redisdb "github.com/flexfit/fitness-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
//
// verifier may be nil when the webhook secret is not configured; the gateway
// then rejects every delivery with a 500 so the misconfiguration is visible
// to the provider's retry loop instead of silently dropping users.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	verifier ports.SignatureVerifier,
	audit service.AuditSink,
	jwtSecret string,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("fitness"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	planRepo := mongodb.NewPlanRepository(db)
	dedup := redisdb.NewDeliveryDedup(rdb)

	userService := service.NewUserService(userRepo, log)
	planService := service.NewPlanService(userRepo, planRepo, log)
	webhookService := service.NewWebhookService(verifier, userService, dedup, audit, log)

	webhookHandler := handler.NewWebhookHandler(webhookService)
	planHandler := handler.NewPlanHandler(planService)
	userHandler := handler.NewUserHandler(userService)

	// --- Webhook (signature-authenticated, never behind JWT) ---
	e.POST("/clerk-webhook", webhookHandler.Receive)

	// --- Collaborator routes ---
	v1 := e.Group("/v1",
		middleware.Auth(jwtSecret),
		middleware.RBAC(middleware.RoleService, middleware.RoleAdmin),
	)
	v1.POST("/plans", planHandler.Create)
	v1.GET("/users/:id/plans", planHandler.ListByUser)
	v1.GET("/users/clerk/:clerk_id", userHandler.GetByClerkID)
	v1.PUT("/users/clerk/:clerk_id", userHandler.Update)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability / docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
