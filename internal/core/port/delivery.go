package port

import (
	"context"
)

// DeliveryUseCase defines the business operations exposed by the delivery
// engine. This interface represents the primary port into the application
// domain.
type DeliveryUseCase interface {
	// Serve picks, charges and renders an ad for a zone request. It returns
	// nil when no ad can be delivered; only infrastructure failures are
	// returned as errors.
	Serve(ctx context.Context, req ServeReq) (*RenderPayload, error)

	// GetStats returns aggregated views and spend for the specified ad
	// (optional) and time period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// ServeReq carries the zone id and the raw request signals.
type ServeReq struct {
	ZoneID         int64
	IP             string
	UserAgent      string
	AcceptLanguage string
}

// RenderPayload is the delivered ad. It is a DTO used by the HTTP layer and
// does not contain domain behaviour.
type RenderPayload struct {
	AdID   int64
	ViewID string
	HTML   string
}
