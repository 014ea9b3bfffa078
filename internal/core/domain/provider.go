package domain

// The types below are a narrow projection of the tracking provider's
// "accepted" item. Only fields the service reads are declared; everything
// else in the payload is ignored on decode.

// TrackedItem is a single accepted lookup result.
type TrackedItem struct {
	Number    string     `json:"number"`
	Carrier   int        `json:"carrier"`
	TrackInfo *TrackInfo `json:"track_info"`
}

type TrackInfo struct {
	LatestStatus *LatestStatus    `json:"latest_status"`
	LatestEvent  *ProviderEvent   `json:"latest_event"`
	ShippingInfo *ShippingInfo    `json:"shipping_info"`
	TimeMetrics  *TimeMetrics     `json:"time_metrics"`
	Tracking     *TrackingDetails `json:"tracking"`
}

type LatestStatus struct {
	Status    string `json:"status"`
	SubStatus string `json:"sub_status"`
}

type ShippingInfo struct {
	ShipperAddress   *ProviderAddress `json:"shipper_address"`
	RecipientAddress *ProviderAddress `json:"recipient_address"`
}

type ProviderAddress struct {
	Country string `json:"country"`
}

// TimeMetrics keeps days_of_transit as a float; some carriers report partial days.
type TimeMetrics struct {
	DaysOfTransit float64 `json:"days_of_transit"`
}

type TrackingDetails struct {
	Providers []CarrierTracking `json:"providers"`
}

// CarrierTracking holds one carrier's view of the shipment.
type CarrierTracking struct {
	Provider    *Carrier        `json:"provider"`
	ServiceType string          `json:"service_type"`
	Events      []ProviderEvent `json:"events"`
}

type Carrier struct {
	Name string `json:"name"`
}

// ProviderEvent is a timeline checkpoint as reported by the provider.
// TimeISO is kept as a string since carriers do not agree on one format.
type ProviderEvent struct {
	TimeISO     string `json:"time_iso"`
	Location    string `json:"location"`
	Description string `json:"description"`
}
