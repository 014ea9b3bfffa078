package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// HealthHandler handles GET /health, the liveness probe.
// Always 200; also reports whether the provider key is configured.
type HealthHandler struct {
	apiKeyConfigured bool
}

func NewHealthHandler(apiKeyConfigured bool) *HealthHandler {
	return &HealthHandler{apiKeyConfigured: apiKeyConfigured}
}

type livenessResponse struct {
	Status           string `json:"status"`
	APIKeyConfigured bool   `json:"api_key_configured"`
}

// Liveness handles GET /health.
//
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  livenessResponse
// @Router   /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, livenessResponse{
		Status:           "healthy",
		APIKeyConfigured: h.apiKeyConfigured,
	})
}

// ReadinessHandler handles GET /health/ready, the readiness probe.
// The service is ready once the provider key is set and, when rate limiting
// is enabled, Redis answers a ping.
type ReadinessHandler struct {
	apiKeyConfigured bool
	redis            *redis.Client // nil when rate limiting is disabled
}

func NewReadinessHandler(apiKeyConfigured bool, rdb *redis.Client) *ReadinessHandler {
	return &ReadinessHandler{
		apiKeyConfigured: apiKeyConfigured,
		redis:            rdb,
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Readiness handles GET /health/ready.
//
// @Summary  Readiness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  readinessResponse
// @Failure  503  {object}  readinessResponse
// @Router   /health/ready [get]
func (h *ReadinessHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	// --- Provider credentials ---
	if h.apiKeyConfigured {
		deps["tracking_provider"] = dependencyStatus{Status: "ok"}
	} else {
		deps["tracking_provider"] = dependencyStatus{Status: "unconfigured", Error: "TRACKING_API_KEY is not set"}
		healthy = false
	}

	// --- Redis ping ---
	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
