package domain

import "strings"

// NormalizeTrackingNumber trims surrounding whitespace and upper-cases the number.
func NormalizeTrackingNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// TrackingView is the flattened, display-ready shape of a provider lookup.
type TrackingView struct {
	TrackingNumber string
	CarrierName    string
	ServiceType    string
	Status         string
	Origin         string
	Destination    string
	DaysTransit    int
	LastUpdate     string
	// Events keeps provider order. When non-empty, only Events[0] is latest.
	Events []TimelineEvent
}

// TimelineEvent is a single checkpoint in a TrackingView.
type TimelineEvent struct {
	Time        string
	Location    string
	Description string
	IsLatest    bool
}
