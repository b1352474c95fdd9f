package port

import (
	"context"
	"time"

	"adzone/internal/core/domain"
)

// GeoLocator is the external IP geolocation service.
type GeoLocator interface {
	// Lookup returns the location of ip. Any failure, including private
	// addresses and missing credentials, is reported as an error.
	Lookup(ctx context.Context, ip string) (*domain.GeoInfo, error)
}

// GeoCacheRepository persists lookup results keyed by IP.
type GeoCacheRepository interface {
	// GetGeo returns the cached entry for ip, or nil when there is none.
	// Freshness is decided by the caller.
	GetGeo(ctx context.Context, ip string) (*domain.GeoCacheEntry, error)
	// UpsertGeo inserts or replaces the entry for entry.IP.
	UpsertGeo(ctx context.Context, entry domain.GeoCacheEntry) error
}

// GeoHotCache is an optional fast layer in front of GeoCacheRepository.
type GeoHotCache interface {
	// GetGeo returns the cached entry for ip, or nil on a miss.
	GetGeo(ctx context.Context, ip string) (*domain.GeoCacheEntry, error)
	// SetGeo stores entry for at most ttl.
	SetGeo(ctx context.Context, entry domain.GeoCacheEntry, ttl time.Duration) error
}
