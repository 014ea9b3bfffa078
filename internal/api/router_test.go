package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/boxbounty/tracking-service/internal/core/domain"
	"github.com/boxbounty/tracking-service/internal/core/ports"
)

type stubTrackingService struct {
	result *ports.TrackResult
}

func (s *stubTrackingService) Track(_ context.Context, _ ports.TrackInput) *ports.TrackResult {
	return s.result
}

func newTestRouter(result *ports.TrackResult) *echo.Echo {
	return NewRouter(Dependencies{
		TrackingService:  &stubTrackingService{result: result},
		APIKeyConfigured: true,
		Logger:           zerolog.Nop(),
		Registry:         prometheus.NewRegistry(),
	})
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Track(t *testing.T) {
	e := newTestRouter(&ports.TrackResult{
		Success: true,
		View: &domain.TrackingView{
			TrackingNumber: "RR123456789CN",
			CarrierName:    "China Post",
			Status:         "Delivered",
			Origin:         "CN",
			Destination:    "US",
			Events:         []domain.TimelineEvent{},
		},
		Trace: []domain.Phase{domain.PhaseIdle, domain.PhaseRegistering, domain.PhaseAwaiting, domain.PhasePolling, domain.PhaseDone},
	})

	rec := serve(e, http.MethodPost, "/track", `{"tracking_number":"rr123456789cn"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["success"] != true {
		t.Fatalf("expected success, got %v", body)
	}
	data := body["data"].(map[string]any)
	if data["carrier_name"] != "China Post" {
		t.Errorf("carrier_name = %v", data["carrier_name"])
	}
}

func TestRouter_Track_MalformedJSON(t *testing.T) {
	e := newTestRouter(nil)

	rec := serve(e, http.MethodPost, "/track", `{"tracking_number":`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success || resp.Message == "" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestRouter_UnknownRoute(t *testing.T) {
	e := newTestRouter(nil)

	rec := serve(e, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"success":false`) {
		t.Errorf("expected envelope, got %s", rec.Body.String())
	}
}

func TestRouter_Health(t *testing.T) {
	e := newTestRouter(nil)

	rec := serve(e, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"api_key_configured":true`) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_IndexPage(t *testing.T) {
	e := newTestRouter(nil)

	rec := serve(e, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); !strings.HasPrefix(ct, echo.MIMETextHTML) {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "/track") {
		t.Error("page does not post to /track")
	}
}

func TestRouter_Metrics(t *testing.T) {
	e := newTestRouter(nil)
	serve(e, http.MethodGet, "/health", "")

	rec := serve(e, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
