package domain

// ZoneStatus tells whether a zone currently accepts delivery requests.
type ZoneStatus string

const (
	ZoneStatusActive   ZoneStatus = "active"
	ZoneStatusInactive ZoneStatus = "inactive"
)

// Zone is a publisher-defined ad slot that requests delivery.
type Zone struct {
	ID          int64
	PublisherID int64
	Name        string
	Status      ZoneStatus
}
