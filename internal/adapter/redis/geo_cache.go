package redisadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"adzone/internal/core/domain"
)

const geoKeyPrefix = "adzone:geo:"

// GeoCache implements port.GeoHotCache on Redis. Entries are stored as JSON
// and expire on their own once their freshness runs out.
type GeoCache struct {
	client redis.Cmdable
}

// NewGeoCache returns a Redis-backed hot geo cache.
func NewGeoCache(client redis.Cmdable) *GeoCache {
	return &GeoCache{client: client}
}

// GetGeo returns the entry for ip, or nil on a miss.
func (c *GeoCache) GetGeo(ctx context.Context, ip string) (*domain.GeoCacheEntry, error) {
	raw, err := c.client.Get(ctx, geoKeyPrefix+ip).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get geo %s: %w", ip, err)
	}
	var entry domain.GeoCacheEntry
	if err = json.Unmarshal(raw, &entry); err != nil {
		// treat a corrupt value as a miss; it is overwritten on refresh
		return nil, nil
	}
	return &entry, nil
}

// SetGeo stores entry for ttl.
func (c *GeoCache) SetGeo(ctx context.Context, entry domain.GeoCacheEntry, ttl time.Duration) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	if err = c.client.Set(ctx, geoKeyPrefix+entry.IP, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set geo %s: %w", entry.IP, err)
	}
	return nil
}
