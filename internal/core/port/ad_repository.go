package port

import (
	"context"
	"errors"
	"time"

	"adzone/internal/core/domain"
)

var (
	// ErrInsufficientBudget is returned when the conditional budget update
	// affected no rows: the ad can no longer fund a view or is not approved.
	ErrInsufficientBudget = errors.New("insufficient budget")
	// ErrDuplicateView is returned when the same viewer already saw the ad in
	// the same zone within the duplicate window.
	ErrDuplicateView = errors.New("duplicate view")
	// ErrZoneNotFound is returned for unknown zone ids.
	ErrZoneNotFound = errors.New("zone not found")
)

// AdRepository defines the read side of the persistence layer for the ad
// engine. It is an outbound port in hexagonal architecture.
type AdRepository interface {
	// GetZone returns a zone by id or ErrZoneNotFound.
	GetZone(ctx context.Context, id int64) (*domain.Zone, error)
	// ListServableAds returns approved ads whose remaining budget covers one
	// more view, with their targeting rules attached.
	ListServableAds(ctx context.Context) ([]domain.Ad, error)
	// GetStats returns aggregated view statistics in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// ViewLedger is the write side: it meters ad budgets. Implementations must
// be concurrency-safe and only ever decrement a budget with a conditional
// update that re-checks remaining >= cost in the same statement.
type ViewLedger interface {
	// ChargeView suppresses duplicates, charges the ad one view and records
	// it, all or nothing. It returns ErrDuplicateView or
	// ErrInsufficientBudget for the expected refusals.
	ChargeView(ctx context.Context, req ChargeReq) (*domain.View, error)
}

// ChargeReq identifies the delivery being charged.
type ChargeReq struct {
	AdID     int64
	ZoneID   int64
	ViewerIP string
	// Since is the start of the duplicate window.
	Since time.Time
	// At is the view timestamp.
	At time.Time
}

// StatsReq selects the period and optionally a single ad.
type StatsReq struct {
	From time.Time
	To   time.Time
	AdID *int64
}

// StatsResp contains aggregated view counts and spend. Remaining is the sum
// of remaining budgets of the selected ads at query time.
type StatsResp struct {
	Views     int64 `json:"views"`
	Cost      int64 `json:"cost"`
	Remaining int64 `json:"remaining"`
}
