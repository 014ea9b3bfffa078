package service

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/boxbounty/tracking-service/internal/core/domain"
)

const (
	unknownCarrier   = "Unknown Carrier"
	unknownStatus    = "Unknown"
	unknownCountry   = "Unknown"
	unknownEventTime = "Unknown time"
	missingNumber    = "N/A"

	// DisplayTimeLayout renders e.g. "March 15, 2024 at 02:30 PM".
	DisplayTimeLayout = "January 02, 2006 at 03:04 PM"
)

// providerTimeLayouts are tried in order. Offsets are kept so the rendered
// wall-clock time matches the carrier's local time.
var providerTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// BuildTrackingView flattens an accepted provider item into the display model.
// A nil item yields a view made entirely of defaults.
func BuildTrackingView(item *domain.TrackedItem) *domain.TrackingView {
	view := &domain.TrackingView{
		TrackingNumber: missingNumber,
		CarrierName:    unknownCarrier,
		Status:         unknownStatus,
		Origin:         unknownCountry,
		Destination:    unknownCountry,
		Events:         []domain.TimelineEvent{},
	}
	if item == nil {
		return view
	}
	if item.Number != "" {
		view.TrackingNumber = item.Number
	}

	info := item.TrackInfo
	if info == nil {
		return view
	}

	var first *domain.CarrierTracking
	if info.Tracking != nil && len(info.Tracking.Providers) > 0 {
		first = &info.Tracking.Providers[0]
	}

	if first != nil {
		if first.Provider != nil && first.Provider.Name != "" {
			view.CarrierName = first.Provider.Name
		}
		view.ServiceType = first.ServiceType
		view.Events = timeline(first.Events)
	}

	view.Status = displayStatus(info.LatestStatus)

	if info.ShippingInfo != nil {
		view.Origin = countryOrUnknown(info.ShippingInfo.ShipperAddress)
		view.Destination = countryOrUnknown(info.ShippingInfo.RecipientAddress)
	}

	if info.TimeMetrics != nil {
		view.DaysTransit = int(info.TimeMetrics.DaysOfTransit)
	}

	if info.LatestEvent != nil && info.LatestEvent.TimeISO != "" {
		view.LastUpdate, _ = FormatProviderTime(info.LatestEvent.TimeISO)
	}

	return view
}

// timeline keeps provider order and flags only the first event as latest.
func timeline(events []domain.ProviderEvent) []domain.TimelineEvent {
	out := make([]domain.TimelineEvent, len(events))
	for i, ev := range events {
		when := unknownEventTime
		if ev.TimeISO != "" {
			when, _ = FormatProviderTime(ev.TimeISO)
		}
		out[i] = domain.TimelineEvent{
			Time:        when,
			Location:    ev.Location,
			Description: ev.Description,
			IsLatest:    i == 0,
		}
	}
	return out
}

// displayStatus prefers a distinct sub-status, humanized, over the main one.
func displayStatus(s *domain.LatestStatus) string {
	if s == nil {
		return unknownStatus
	}
	if s.SubStatus != "" && s.SubStatus != s.Status {
		return HumanizeStatus(s.SubStatus)
	}
	if s.Status != "" {
		return s.Status
	}
	return unknownStatus
}

// HumanizeStatus turns a provider code such as "Delivered_Other" into
// "Delivered Other". A Caser is stateful, so one is built per call.
func HumanizeStatus(code string) string {
	return cases.Title(language.Und).String(strings.ReplaceAll(code, "_", " "))
}

func countryOrUnknown(a *domain.ProviderAddress) string {
	if a == nil || a.Country == "" {
		return unknownCountry
	}
	return a.Country
}

// FormatProviderTime renders an ISO-8601 timestamp with DisplayTimeLayout.
// When no layout matches, raw is returned unchanged together with false.
func FormatProviderTime(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range providerTimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(DisplayTimeLayout), true
		}
	}
	return raw, false
}
