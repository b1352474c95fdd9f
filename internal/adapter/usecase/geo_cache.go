package usecase

import (
	"context"
	"log/slog"
	"time"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// DefaultGeoTTL is how long a cached geolocation is served before the
// external service is asked again.
const DefaultGeoTTL = 7 * 24 * time.Hour

// GeoCache maps IP addresses to locations. Lookups go through an optional
// hot cache, then the persisted cache table, then the external locator.
// Failures of the locator are never cached so the next request retries.
type GeoCache struct {
	repo    port.GeoCacheRepository
	hot     port.GeoHotCache
	locator port.GeoLocator
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// GeoCacheOption configures a GeoCache.
type GeoCacheOption func(*GeoCache)

// WithHotCache puts hot in front of the cache table.
func WithHotCache(hot port.GeoHotCache) GeoCacheOption {
	return func(c *GeoCache) {
		c.hot = hot
	}
}

// WithGeoTTL overrides DefaultGeoTTL.
func WithGeoTTL(ttl time.Duration) GeoCacheOption {
	return func(c *GeoCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithGeoClock overrides time.Now.
func WithGeoClock(now func() time.Time) GeoCacheOption {
	return func(c *GeoCache) {
		c.now = now
	}
}

// NewGeoCache returns a GeoCache over repo and locator.
func NewGeoCache(repo port.GeoCacheRepository, locator port.GeoLocator, m *metrics.Metrics, logger *slog.Logger, opts ...GeoCacheOption) *GeoCache {
	c := &GeoCache{
		repo:    repo,
		locator: locator,
		ttl:     DefaultGeoTTL,
		now:     time.Now,
		logger:  logger,
		metrics: m,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the location of ip. It never fails: cache errors degrade
// to a miss and locator errors to the UTC fallback.
func (c *GeoCache) Resolve(ctx context.Context, ip string) domain.GeoInfo {
	if ip == "" {
		c.metrics.RecordGeoLookup("fallback")
		return domain.FallbackGeo(ip)
	}
	now := c.now()

	if c.hot != nil {
		entry, err := c.hot.GetGeo(ctx, ip)
		if err != nil {
			c.logger.Warn("geo hot cache read failed", slog.String("ip", ip), slog.Any("error", err))
		} else if entry != nil && entry.Fresh(now, c.ttl) {
			c.metrics.RecordGeoLookup("hot_hit")
			return entry.GeoInfo
		}
	}

	entry, err := c.repo.GetGeo(ctx, ip)
	if err != nil {
		c.logger.Warn("geo cache read failed", slog.String("ip", ip), slog.Any("error", err))
	} else if entry != nil && entry.Fresh(now, c.ttl) {
		c.metrics.RecordGeoLookup("hit")
		c.fillHot(ctx, *entry, now)
		return entry.GeoInfo
	}

	info, err := c.locator.Lookup(ctx, ip)
	if err != nil || info == nil {
		c.logger.Debug("geo lookup failed, using fallback", slog.String("ip", ip), slog.Any("error", err))
		c.metrics.RecordGeoLookup("fallback")
		return domain.FallbackGeo(ip)
	}
	c.metrics.RecordGeoLookup("lookup")

	fresh := domain.GeoCacheEntry{GeoInfo: *info, LastUpdated: now}
	fresh.IP = ip
	if fresh.Timezone == "" {
		fresh.Timezone = domain.FallbackTimezone
	}
	if err = c.repo.UpsertGeo(ctx, fresh); err != nil {
		c.logger.Warn("geo cache write failed", slog.String("ip", ip), slog.Any("error", err))
	}
	c.fillHot(ctx, fresh, now)
	return fresh.GeoInfo
}

func (c *GeoCache) fillHot(ctx context.Context, entry domain.GeoCacheEntry, now time.Time) {
	if c.hot == nil {
		return
	}
	remaining := c.ttl - now.Sub(entry.LastUpdated)
	if remaining <= 0 {
		return
	}
	if err := c.hot.SetGeo(ctx, entry, remaining); err != nil {
		c.logger.Warn("geo hot cache write failed", slog.String("ip", entry.IP), slog.Any("error", err))
	}
}
