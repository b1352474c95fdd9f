package domain

import "time"

// AdStatus is the lifecycle state of an ad.
type AdStatus string

const (
	AdStatusDraft     AdStatus = "draft"
	AdStatusPending   AdStatus = "pending"
	AdStatusApproved  AdStatus = "approved"
	AdStatusRejected  AdStatus = "rejected"
	AdStatusPaused    AdStatus = "paused"
	AdStatusCompleted AdStatus = "completed"
)

// Ad represents an advertiser-owned creative campaign.
// Budgets are stored in integer units (e.g. cents).
type Ad struct {
	ID              int64
	AdvertiserID    int64
	Name            string
	Status          AdStatus
	Budget          int64
	RemainingBudget int64
	CostPerView     int64  // fixed charge per delivered view
	Creative        string // liquid template rendered into the zone
	Targeting       *TargetingRule
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Servable reports whether the ad may be delivered and charged for one more
// view.
func (a Ad) Servable() bool {
	return a.Status == AdStatusApproved && a.CostPerView > 0 && a.RemainingBudget >= a.CostPerView
}
