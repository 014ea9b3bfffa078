// Package seventeentrack is the 17TRACK v2.4 implementation of
// ports.TrackingClient.
package seventeentrack

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/boxbounty/tracking-service/internal/api/metrics"
	"github.com/boxbounty/tracking-service/internal/core/ports"
)

const (
	DefaultBaseURL = "https://api.17track.net"
	defaultTimeout = 15 * time.Second

	registerPath  = "/track/v2.4/register"
	trackInfoPath = "/track/v2.4/gettrackinfo"

	// The provider only accepts this exact, lower-case header name.
	tokenHeader = "17token"

	opRegister  = "register"
	opTrackInfo = "gettrackinfo"

	maxLoggedBody = 500
)

// Lookup failure messages shown to the user as-is.
const (
	MsgRejected = "Tracking number rejected"
	MsgNotFound = "Tracking number not found. It may take 24-48 hours for new shipments to appear."
	MsgNoData   = "No tracking data available yet"
	MsgFound    = "Found"
)

// Config captures the settings for talking to the provider.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implements ports.TrackingClient over resty.
type Client struct {
	http *resty.Client
	log  zerolog.Logger
}

var _ ports.TrackingClient = (*Client)(nil)

// New builds a Client. Empty BaseURL and Timeout fall back to the defaults.
func New(cfg Config, log zerolog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader(tokenHeader, cfg.APIKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http: http,
		log:  log.With().Str("component", "17track").Logger(),
	}
}

// Register submits a number for tracking. Application code 0 is success,
// including numbers the provider already tracks.
func (c *Client) Register(ctx context.Context, trackingNumber string, carrier int) ports.ProviderResult {
	body := []numberRequest{{Number: trackingNumber, Carrier: carrier}}

	var env registerEnvelope
	if msg, ok := c.call(ctx, opRegister, registerPath, body, &env); !ok {
		return ports.ProviderResult{Message: msg}
	}

	if env.Code != 0 {
		return ports.ProviderResult{Message: env.failureMessage()}
	}
	return ports.ProviderResult{Success: true, Message: env.Data.Message}
}

// GetTrackingInfo fetches the current tracking state. The provider sorts the
// number into exactly one of accepted, rejected or not_found.
func (c *Client) GetTrackingInfo(ctx context.Context, trackingNumber string) ports.ProviderResult {
	body := []numberRequest{{Number: trackingNumber}}

	var env trackInfoEnvelope
	if msg, ok := c.call(ctx, opTrackInfo, trackInfoPath, body, &env); !ok {
		return ports.ProviderResult{Message: msg}
	}

	if env.Code != 0 {
		return ports.ProviderResult{Message: "API Error: " + env.failureMessage()}
	}

	d := env.Data
	c.log.Debug().
		Str("tracking_number", trackingNumber).
		Int("accepted", len(d.Accepted)).
		Int("rejected", len(d.Rejected)).
		Int("not_found", len(d.NotFound)).
		Msg("lookup categorized")

	switch {
	case len(d.Accepted) > 0:
		item := d.Accepted[0]
		return ports.ProviderResult{Success: true, Message: MsgFound, Item: &item}
	case len(d.Rejected) > 0:
		return ports.ProviderResult{Message: MsgRejected}
	case len(d.NotFound) > 0:
		return ports.ProviderResult{Message: MsgNotFound}
	default:
		return ports.ProviderResult{Message: MsgNoData}
	}
}

// call posts body to path and decodes the JSON reply into out. On any
// transport, HTTP or decoding fault it returns a user-facing message and false.
func (c *Client) call(ctx context.Context, op, path string, body, out any) (string, bool) {
	start := time.Now()
	log := c.log.With().Str("op", op).Logger()

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)

	metrics.ProviderCallDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.ProviderCallsTotal.WithLabelValues(op, "network_error").Inc()
		log.Error().Err(err).Msg("provider request failed")
		return fmt.Sprintf("Network error: %v", err), false
	}

	log.Debug().
		Int("status", resp.StatusCode()).
		Str("body", truncate(resp.String(), maxLoggedBody)).
		Msg("provider response")

	if resp.IsError() {
		metrics.ProviderCallsTotal.WithLabelValues(op, "http_error").Inc()
		log.Error().Int("status", resp.StatusCode()).Msg("provider returned an error status")
		return "API Error: " + resp.Status(), false
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		metrics.ProviderCallsTotal.WithLabelValues(op, "decode_error").Inc()
		log.Error().Err(err).Msg("provider response could not be decoded")
		return fmt.Sprintf("Unexpected response: %v", err), false
	}

	metrics.ProviderCallsTotal.WithLabelValues(op, "ok").Inc()
	return "", true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
