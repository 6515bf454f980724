package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/pulseboard/dashboard-api/docs"
	"github.com/pulseboard/dashboard-api/internal/api/handler"
	"github.com/pulseboard/dashboard-api/internal/api/middleware"
	"github.com/pulseboard/dashboard-api/internal/core/domain"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// RouterConfig carries the dependencies NewRouter wires into the route tree.
// Mongo and Redis may be nil when the deployment runs on the in-memory store;
// the readiness probe skips whatever is absent.
type RouterConfig struct {
	Log            zerolog.Logger
	AuthService    ports.AuthService
	Analytics      ports.AnalyticsProvider
	Tokens         ports.TokenVerifier
	Store          ports.UserStore
	Mongo          *mongo.Database
	Redis          *redis.Client
	AllowedOrigins []string
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("pulseboard"))
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowCredentials: true,
		}))
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	dashboardHandler := handler.NewDashboardHandler(cfg.Analytics)
	adminHandler := handler.NewAdminHandler(cfg.Store)

	// --- Public routes ---
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Pulseboard dashboard API is running"})
	})

	apiV1 := e.Group("/api/v1")
	apiV1.POST("/auth/register", authHandler.Register)
	apiV1.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	authed := apiV1.Group("", middleware.Auth(cfg.Tokens, cfg.Store))
	authed.GET("/auth/me", authHandler.Me)
	authed.GET("/dashboard", dashboardHandler.Dashboard,
		middleware.RequirePermission(domain.PermDashboardRead))
	authed.GET("/analytics/detailed", dashboardHandler.Detailed,
		middleware.RequirePermission(domain.PermAnalyticsRead))
	authed.POST("/reports/export", dashboardHandler.ExportReport,
		middleware.RequirePermission(domain.PermReportsExport))
	authed.GET("/admin/users", adminHandler.ListUsers,
		middleware.RequirePermission(domain.PermUsersManage))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.Mongo, cfg.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
