package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adzone/internal/core/domain"
)

// GeoCacheRepository implements port.GeoCacheRepository on the geo_cache
// table.
type GeoCacheRepository struct {
	pool *pgxpool.Pool
}

// NewGeoCacheRepository returns a new repository instance.
func NewGeoCacheRepository(pool *pgxpool.Pool) *GeoCacheRepository {
	return &GeoCacheRepository{pool: pool}
}

// GetGeo returns the cached entry for ip or nil.
func (r *GeoCacheRepository) GetGeo(ctx context.Context, ip string) (*domain.GeoCacheEntry, error) {
	var e domain.GeoCacheEntry
	err := r.pool.QueryRow(ctx, `SELECT ip, country, region, city, latitude, longitude, timezone, last_updated FROM geo_cache WHERE ip = $1`, ip).
		Scan(&e.IP, &e.Country, &e.Region, &e.City, &e.Latitude, &e.Longitude, &e.Timezone, &e.LastUpdated)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UpsertGeo inserts or refreshes the entry keyed by entry.IP. Concurrent
// writers for the same IP are last-writer-wins.
func (r *GeoCacheRepository) UpsertGeo(ctx context.Context, entry domain.GeoCacheEntry) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO geo_cache (ip, country, region, city, latitude, longitude, timezone, last_updated)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        ON CONFLICT (ip) DO UPDATE SET
            country = EXCLUDED.country,
            region = EXCLUDED.region,
            city = EXCLUDED.city,
            latitude = EXCLUDED.latitude,
            longitude = EXCLUDED.longitude,
            timezone = EXCLUDED.timezone,
            last_updated = EXCLUDED.last_updated`,
		entry.IP, entry.Country, entry.Region, entry.City, entry.Latitude, entry.Longitude, entry.Timezone, entry.LastUpdated)
	return err
}
