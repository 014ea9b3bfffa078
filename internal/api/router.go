package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/boxbounty/tracking-service/docs"
	"github.com/boxbounty/tracking-service/internal/api/handler"
	"github.com/boxbounty/tracking-service/internal/api/middleware"
	"github.com/boxbounty/tracking-service/internal/core/ports"
	redisdb "github.com/boxbounty/tracking-service/internal/infrastructure/db/redis"
	"github.com/boxbounty/tracking-service/web"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	TrackingService  ports.TrackingService
	APIKeyConfigured bool
	// Redis enables per-IP rate limiting on /track when non-nil.
	Redis              *redis.Client
	RateLimitPerMinute int
	Logger             zerolog.Logger
	// Registry receives the HTTP metrics; the default registry when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(deps.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig(deps.Registry)))

	// --- Dependencies ---
	trackingHandler := handler.NewTrackingHandler(deps.TrackingService)
	healthHandler := handler.NewHealthHandler(deps.APIKeyConfigured)
	readinessHandler := handler.NewReadinessHandler(deps.APIKeyConfigured, deps.Redis)

	// --- Tracking ---
	var trackMiddleware []echo.MiddlewareFunc
	if deps.Redis != nil && deps.RateLimitPerMinute > 0 {
		limiter := redisdb.NewRateLimiter(deps.Redis, deps.RateLimitPerMinute, time.Minute)
		trackMiddleware = append(trackMiddleware, middleware.RateLimit(limiter, deps.Logger))
	}
	e.POST("/track", trackingHandler.Track, trackMiddleware...)

	// --- Page, docs and metrics ---
	e.GET("/", func(c echo.Context) error {
		return c.HTMLBlob(http.StatusOK, web.IndexHTML)
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/metrics", promHandler(deps.Registry))

	// --- Health probes ---
	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: can lookups succeed?

	return e
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		Skipper: func(c echo.Context) bool {
			p := c.Path()
			return p == "/metrics" || p == "/health" || p == "/health/ready"
		},
		LogValuesFunc: func(_ echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func promConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	cfg := echoprometheus.MiddlewareConfig{Subsystem: "tracking"}
	if reg != nil {
		cfg.Registerer = reg
	}
	return cfg
}

func promHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
