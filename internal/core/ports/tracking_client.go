package ports

import (
	"context"

	"github.com/boxbounty/tracking-service/internal/core/domain"
)

// ProviderResult is the uniform outcome of a call to the tracking provider.
// Transport and HTTP faults are folded into Success=false with a message;
// implementations never return them as Go errors.
type ProviderResult struct {
	Success bool
	Message string
	Item    *domain.TrackedItem // set only on a successful lookup
}

// TrackingClient wraps the two provider operations the lookup flow needs.
type TrackingClient interface {
	// Register asks the provider to start tracking a number. carrier is the
	// provider's numeric carrier code; 0 lets the provider detect it.
	Register(ctx context.Context, trackingNumber string, carrier int) ProviderResult
	GetTrackingInfo(ctx context.Context, trackingNumber string) ProviderResult
}
