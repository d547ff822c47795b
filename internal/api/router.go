package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/dchlearning/platform/internal/api/docs"
	"github.com/dchlearning/platform/internal/api/handler"
	"github.com/dchlearning/platform/internal/api/middleware"
	"github.com/dchlearning/platform/internal/core/ports"
)

const (
	Version  = "1.0.0"
	docsPath = "/api-docs/index.html"
)

// Dependencies carries everything the router wires into handlers.
type Dependencies struct {
	Accounts      ports.AccountService
	Authorization ports.AuthorizationService
	Catalog       ports.CatalogService
	Contacts      ports.ContactService

	// Readiness lists the backing services probed by /health/ready.
	Readiness []handler.DependencyCheck

	// TokenAuth makes the admin gate require a verified bearer token.
	TokenAuth   bool
	CORSOrigins []string

	// Metrics receives the HTTP request metrics and is served on /metrics.
	// Defaults to the Prometheus default registry.
	Metrics *prometheus.Registry

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Log))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: corsOrigins(deps.CORSOrigins),
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			middleware.HeaderUserEmail,
			handler.HeaderIdempotencyKey,
		},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "dch",
		Registerer: registerer,
	}))

	// --- Dependencies ---
	userHandler := handler.NewUserHandler(deps.Accounts)
	formationHandler := handler.NewFormationHandler(deps.Catalog)
	contactHandler := handler.NewContactHandler(deps.Contacts)
	adminHandler := handler.NewAdminHandler(deps.Catalog, deps.Accounts, deps.Log)
	requireAdmin := middleware.RequireAdmin(deps.Authorization, deps.TokenAuth)

	// --- Public routes ---
	e.GET("/", handler.NewInfoHandler(docsPath, Version).Root)

	users := e.Group("/api/users")
	users.POST("/inscription", userHandler.Register)
	users.POST("/connexion", userHandler.Login)

	formations := e.Group("/api/formations")
	formations.GET("", formationHandler.List)
	formations.GET("/:id", formationHandler.Get)

	e.POST("/api/contact", contactHandler.Submit)

	// --- Admin routes ---
	admin := e.Group("/api/admin", requireAdmin)
	admin.GET("/formations", adminHandler.ListFormations)
	admin.PUT("/formations/:id", adminHandler.UpdateFormation)
	admin.DELETE("/formations/:id", adminHandler.DeleteFormation)
	admin.PATCH("/formations/:id/statut", adminHandler.SetFormationStatus)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PATCH("/users/:id/promote", adminHandler.PromoteUser)

	// --- Operations (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Readiness...)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/api-docs", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, docsPath)
	})
	e.GET("/api-docs/*", echoSwagger.WrapHandler)

	return e
}

func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			evt := log.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = log.Error()
			}
			evt.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
