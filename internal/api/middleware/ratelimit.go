package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/boxbounty/tracking-service/internal/api/metrics"
)

// Limiter decides whether a client may make another request.
type Limiter interface {
	Allow(ctx context.Context, clientKey string) (bool, error)
}

// RateLimit rejects clients over their quota with 429, keyed by client IP.
// Limiter failures let the request through; lookups matter more than quotas.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}
			if !allowed {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many tracking requests. Please wait a minute and try again.")
			}
			return next(c)
		}
	}
}
