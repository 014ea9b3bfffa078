package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/boxbounty/tracking-service/internal/core/domain"
	"github.com/boxbounty/tracking-service/internal/core/ports"
)

const (
	DefaultSettleDelay    = 2 * time.Second
	DefaultRetryDelay     = 2 * time.Second
	DefaultLookupAttempts = 3
)

// User-facing messages owned by the lookup flow.
const (
	MsgEmptyTrackingNumber = "Please enter a tracking number"
	MsgAPIKeyMissing       = "API key not configured. Please set the TRACKING_API_KEY environment variable."
	MsgAuthFailed          = "API Authentication Failed. Please check your API key is correct."
	MsgCancelled           = "Request cancelled"
	registerFailedPrefix   = "Failed to register: "
)

// TrackingOptions configures the lookup flow. Zero values fall back to the
// package defaults; a nil Sleeper uses a context-aware timer.
type TrackingOptions struct {
	APIKeyConfigured bool
	SettleDelay      time.Duration
	RetryDelay       time.Duration
	LookupAttempts   int
	Sleeper          ports.Sleeper
}

// TrackingService registers a number with the provider, waits for ingestion
// and then polls for tracking info a bounded number of times.
type TrackingService struct {
	client         ports.TrackingClient
	sleeper        ports.Sleeper
	configured     bool
	settleDelay    time.Duration
	retryDelay     time.Duration
	lookupAttempts int
	logger         zerolog.Logger
}

func NewTrackingService(client ports.TrackingClient, opts TrackingOptions, logger zerolog.Logger) *TrackingService {
	if opts.SettleDelay <= 0 {
		opts.SettleDelay = DefaultSettleDelay
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = DefaultRetryDelay
	}
	if opts.LookupAttempts <= 0 {
		opts.LookupAttempts = DefaultLookupAttempts
	}
	if opts.Sleeper == nil {
		opts.Sleeper = TimerSleeper{}
	}
	return &TrackingService{
		client:         client,
		sleeper:        opts.Sleeper,
		configured:     opts.APIKeyConfigured,
		settleDelay:    opts.SettleDelay,
		retryDelay:     opts.RetryDelay,
		lookupAttempts: opts.LookupAttempts,
		logger:         logger,
	}
}

var _ ports.TrackingService = (*TrackingService)(nil)

// flow records phase transitions for a single Track call.
type flow struct {
	trace    []domain.Phase
	attempts int
}

func (f *flow) enter(p domain.Phase) {
	f.trace = append(f.trace, p)
}

func (f *flow) fail(msg string) *ports.TrackResult {
	f.enter(domain.PhaseFailed)
	return &ports.TrackResult{Message: msg, Trace: f.trace, Attempts: f.attempts}
}

// Track runs the full lookup for one tracking number. It never returns an
// error: every failure ends in a result with Success=false and a message.
func (s *TrackingService) Track(ctx context.Context, in ports.TrackInput) *ports.TrackResult {
	f := &flow{trace: []domain.Phase{domain.PhaseIdle}}

	number := domain.NormalizeTrackingNumber(in.TrackingNumber)
	if number == "" {
		return f.fail(MsgEmptyTrackingNumber)
	}
	if !s.configured {
		s.logger.Warn().Msg("tracking requested without a configured provider API key")
		return f.fail(MsgAPIKeyMissing)
	}

	log := s.logger.With().Str("tracking_number", number).Logger()
	log.Info().Msg("new tracking request")

	// 1. Register once; a failed registration ends the flow.
	f.enter(domain.PhaseRegistering)
	reg := s.client.Register(ctx, number, in.Carrier)
	if !reg.Success {
		log.Warn().Str("reason", reg.Message).Msg("registration failed")
		return f.fail(registerFailedPrefix + registrationMessage(reg.Message))
	}

	// 2. Give the provider time to ingest the number.
	f.enter(domain.PhaseAwaiting)
	if err := s.sleeper.Sleep(ctx, s.settleDelay); err != nil {
		return f.fail(MsgCancelled)
	}

	// 3. Poll with a fixed count and a fixed delay between misses.
	var last ports.ProviderResult
	for attempt := 1; attempt <= s.lookupAttempts; attempt++ {
		f.enter(domain.PhasePolling)
		f.attempts = attempt
		log.Debug().Int("attempt", attempt).Msg("fetching tracking info")

		last = s.client.GetTrackingInfo(ctx, number)
		if last.Success {
			break
		}
		log.Debug().Int("attempt", attempt).Str("reason", last.Message).Msg("tracking info not ready")

		if attempt < s.lookupAttempts {
			if err := s.sleeper.Sleep(ctx, s.retryDelay); err != nil {
				return f.fail(MsgCancelled)
			}
		}
	}

	if !last.Success {
		log.Info().Int("attempts", f.attempts).Str("reason", last.Message).Msg("tracking lookup failed")
		return f.fail(last.Message)
	}

	view := BuildTrackingView(last.Item)
	f.enter(domain.PhaseDone)
	log.Info().
		Int("attempts", f.attempts).
		Int("events", len(view.Events)).
		Str("status", view.Status).
		Msg("tracking data retrieved")

	return &ports.TrackResult{
		Success:  true,
		View:     view,
		Trace:    f.trace,
		Attempts: f.attempts,
	}
}

// registrationMessage swaps provider auth failures for a clearer message.
func registrationMessage(msg string) string {
	if strings.Contains(msg, "401") || strings.Contains(msg, "Unauthorized") {
		return MsgAuthFailed
	}
	return msg
}
