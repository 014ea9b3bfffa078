package ports

import (
	"context"
	"time"

	"github.com/boxbounty/tracking-service/internal/core/domain"
)

// TrackInput is the DTO passed from the transport layer to TrackingService.
type TrackInput struct {
	TrackingNumber string
	Carrier        int // optional provider carrier code
}

// TrackResult is returned by TrackingService.Track.
type TrackResult struct {
	Success bool
	Message string
	View    *domain.TrackingView // set only when Success is true
	// Trace lists every phase the flow entered, starting at PhaseIdle and
	// ending at PhaseDone or PhaseFailed.
	Trace    []domain.Phase
	Attempts int // lookup calls made
}

// Phase returns the terminal phase of the flow.
func (r *TrackResult) Phase() domain.Phase {
	if len(r.Trace) == 0 {
		return domain.PhaseIdle
	}
	return r.Trace[len(r.Trace)-1]
}

// TrackingService runs the register → await → poll lookup for one number.
type TrackingService interface {
	Track(ctx context.Context, input TrackInput) *TrackResult
}

// Sleeper pauses the flow between provider calls.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
