package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/boxbounty/tracking-service/internal/api/metrics"
	"github.com/boxbounty/tracking-service/internal/core/domain"
	"github.com/boxbounty/tracking-service/internal/core/ports"
)

// TrackingHandler handles shipment lookups.
type TrackingHandler struct {
	service ports.TrackingService
}

func NewTrackingHandler(service ports.TrackingService) *TrackingHandler {
	return &TrackingHandler{service: service}
}

// Track handles POST /track.
//
// Lookup outcomes, failed ones included, are answered with 200 and
// success=false so the page can show the message as-is.
//
// @Summary      Look up a shipment
// @Description  Registers the number with the tracking provider, waits for ingestion and polls up to three times.
// @Tags         tracking
// @Accept       json
// @Produce      json
// @Param        body  body      trackRequest   true  "Tracking number and optional provider carrier code"
// @Success      200   {object}  trackResponse
// @Failure      400   {object}  trackResponse
// @Failure      422   {object}  trackResponse
// @Failure      429   {object}  trackResponse
// @Router       /track [post]
func (h *TrackingHandler) Track(c echo.Context) error {
	var req trackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.TrackingNumber = strings.TrimSpace(req.TrackingNumber)
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	start := time.Now()
	result := h.service.Track(c.Request().Context(), toTrackInput(req))
	observeLookup(result, time.Since(start))

	return c.JSON(http.StatusOK, toTrackResponse(result))
}

func observeLookup(r *ports.TrackResult, elapsed time.Duration) {
	outcome := "failure"
	if r.Success {
		outcome = "success"
	}
	metrics.LookupsTotal.WithLabelValues(outcome, stoppedAt(r.Trace).String()).Inc()
	metrics.LookupAttempts.Observe(float64(r.Attempts))
	metrics.LookupDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// stoppedAt returns the last non-terminal phase of a trace.
func stoppedAt(trace []domain.Phase) domain.Phase {
	for i := len(trace) - 1; i >= 0; i-- {
		if !trace[i].Terminal() {
			return trace[i]
		}
	}
	return domain.PhaseIdle
}
