package handler

import (
	"github.com/boxbounty/tracking-service/internal/core/domain"
	"github.com/boxbounty/tracking-service/internal/core/ports"
)

// --- Request → Service input ---

func toTrackInput(req trackRequest) ports.TrackInput {
	return ports.TrackInput{
		TrackingNumber: req.TrackingNumber,
		Carrier:        req.Carrier,
	}
}

// --- Service result → HTTP response ---

func toTrackResponse(r *ports.TrackResult) trackResponse {
	if !r.Success || r.View == nil {
		return trackResponse{Success: false, Message: r.Message}
	}
	return trackResponse{
		Success: true,
		Message: r.Message,
		Data:    toViewData(r.View),
	}
}

func toViewData(v *domain.TrackingView) *trackingViewData {
	events := make([]timelineEventData, len(v.Events))
	for i, ev := range v.Events {
		events[i] = timelineEventData{
			Time:        ev.Time,
			Location:    ev.Location,
			Description: ev.Description,
			IsLatest:    ev.IsLatest,
		}
	}
	return &trackingViewData{
		TrackingNumber: v.TrackingNumber,
		CarrierName:    v.CarrierName,
		ServiceType:    v.ServiceType,
		Status:         v.Status,
		Origin:         v.Origin,
		Destination:    v.Destination,
		DaysTransit:    v.DaysTransit,
		LastUpdate:     v.LastUpdate,
		Events:         events,
	}
}
