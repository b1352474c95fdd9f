package redisadapter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adzone/internal/core/domain"
)

func newTestCache(t *testing.T) (*GeoCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewGeoCache(client), mr
}

func TestGeoCacheRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()
	updated := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	entry := domain.GeoCacheEntry{
		GeoInfo:     domain.GeoInfo{IP: "203.0.113.7", Country: "US", Region: "NY", City: "New York", Timezone: "America/New_York"},
		LastUpdated: updated,
	}
	require.NoError(t, cache.SetGeo(ctx, entry, time.Hour))

	got, err := cache.GetGeo(ctx, "203.0.113.7")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "New York", got.City)
	assert.True(t, got.LastUpdated.Equal(updated))
}

func TestGeoCacheMissAndExpiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	got, err := cache.GetGeo(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.Nil(t, got)

	entry := domain.GeoCacheEntry{GeoInfo: domain.GeoInfo{IP: "198.51.100.1", Country: "DE"}}
	require.NoError(t, cache.SetGeo(ctx, entry, time.Minute))

	mr.FastForward(2 * time.Minute)
	got, err = cache.GetGeo(ctx, "198.51.100.1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGeoCacheCorruptValueIsMiss(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set(geoKeyPrefix+"192.0.2.9", "{not json"))

	got, err := cache.GetGeo(context.Background(), "192.0.2.9")
	require.NoError(t, err)
	assert.Nil(t, got)
}
