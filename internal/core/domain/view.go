package domain

import "time"

// View is an append-only record of one charged ad delivery.
type View struct {
	ID          string
	AdID        int64
	ZoneID      int64
	PublisherID int64
	ViewerIP    string
	Cost        int64
	ViewedAt    time.Time
}
