package handler

// trackRequest is the body of POST /track. The number is trimmed before
// validation. Emptiness is checked by the service so whitespace-only input
// gets the same friendly message.
type trackRequest struct {
	TrackingNumber string `json:"tracking_number" validate:"max=64"`
	Carrier        int    `json:"carrier"         validate:"gte=0"`
}

// trackResponse is the envelope for every /track outcome.
type trackResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    *trackingViewData `json:"data,omitempty"`
}

// Response-only types owned by the transport layer, kept apart from the
// domain view so the JSON contract does not move with it.

type trackingViewData struct {
	TrackingNumber string              `json:"tracking_number"`
	CarrierName    string              `json:"carrier_name"`
	ServiceType    string              `json:"service_type"`
	Status         string              `json:"status"`
	Origin         string              `json:"origin"`
	Destination    string              `json:"destination"`
	DaysTransit    int                 `json:"days_transit"`
	LastUpdate     string              `json:"last_update"`
	Events         []timelineEventData `json:"events"`
}

type timelineEventData struct {
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	IsLatest    bool   `json:"is_latest"`
}
