package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/track", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if jsonErr := json.Unmarshal(rec.Body.Bytes(), &resp); jsonErr != nil {
		t.Fatalf("invalid json: %v", jsonErr)
	}
	return rec, resp
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, resp := runErrorHandler(t, echo.NewHTTPError(http.StatusTooManyRequests, "slow down"))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if resp.Success || resp.Message != "slow down" {
		t.Errorf("unexpected envelope: %+v", resp)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, resp := runErrorHandler(t, errors.New("boom: secret detail"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if resp.Message != "internal server error" {
		t.Errorf("internal details leaked: %q", resp.Message)
	}
}
