package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/freelancedash/profit-engine/internal/api/handler"
	"github.com/freelancedash/profit-engine/internal/api/middleware"
	"github.com/freelancedash/profit-engine/internal/core/service"
	"github.com/freelancedash/profit-engine/internal/infrastructure/http/handlers"
	"github.com/freelancedash/profit-engine/internal/pkg/config"

	mongodb "github.com/freelancedash/profit-engine/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancedash/profit-engine/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	entryRepo := mongodb.NewEntryRepository(db)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(authRepo, tokenService)
	dashboardService := service.NewDashboardService(entryRepo, log)
	entryService := service.NewEntryService(entryRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	entryHandler := handler.NewEntryHandler(entryService)

	authGate := middleware.Auth(tokenService, log)
	throttle := middleware.Throttle(
		redisdb.NewLoginThrottle(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow), log)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login, throttle)

	// --- Protected routes (all owner-scoped behind the token gate) ---
	e.GET("/dashboard", dashboardHandler.Get, authGate)
	e.POST("/add-time", entryHandler.AddTime, authGate)
	e.POST("/add-income", entryHandler.AddIncome, authGate)
	e.GET("/client-history", entryHandler.ClientHistory, authGate)
	e.POST("/update-log", entryHandler.UpdateLog, authGate)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
