package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adzone/internal/config/configs"
	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/db"
)

// newTestPool connects to PSQL_TEST_ADDRESS, applies migrations and empties
// every table. The test is skipped when the variable is unset.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	addr := os.Getenv("PSQL_TEST_ADDRESS")
	if addr == "" {
		t.Skip("PSQL_TEST_ADDRESS not set")
	}
	u, err := url.Parse(addr)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(addr, discardLogger()))

	pool, err := db.NewPostgresPool(context.Background(), configs.Postgres{Addr: *u, MaxConns: 16})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = pool.Exec(context.Background(), `TRUNCATE views, ad_targeting, ads, zones, geo_cache RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

func insertFixture(t *testing.T, pool *pgxpool.Pool, budget, cost int64, targeting string) {
	t.Helper()
	ctx := context.Background()
	_, err := pool.Exec(ctx, `INSERT INTO zones (id, publisher_id, name, status) VALUES (1, 9, 'z', 'active')`)
	require.NoError(t, err)
	_, err = pool.Exec(ctx, `INSERT INTO ads (id, advertiser_id, name, status, budget, remaining_budget, cost_per_view)
VALUES (1, 1, 'a', 'approved', $1, $1, $2)`, budget, cost)
	require.NoError(t, err)
	if targeting != "" {
		_, err = pool.Exec(ctx, `INSERT INTO ad_targeting (ad_id, data) VALUES (1, $1)`, targeting)
		require.NoError(t, err)
	}
}

func chargeReq(ip string, at time.Time) port.ChargeReq {
	return port.ChargeReq{AdID: 1, ZoneID: 1, ViewerIP: ip, Since: at.Add(-24 * time.Hour), At: at}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIntegrationConcurrentChargesConserveBudget(t *testing.T) {
	pool := newTestPool(t)
	insertFixture(t, pool, 7*15+4, 7, "")
	repo := NewAdRepository(pool, discardLogger())
	at := time.Now().UTC()

	const requests = 60
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		charged  int
		refusals int
	)
	wg.Add(requests)
	for i := 0; i < requests; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := repo.ChargeView(context.Background(), chargeReq(fmt.Sprintf("198.51.100.%d", i), at))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				charged++
			case errors.Is(err, port.ErrInsufficientBudget):
				refusals++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 15, charged)
	assert.Equal(t, requests-15, refusals)

	var remaining, spent int64
	var status string
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT remaining_budget, status FROM ads WHERE id = 1`).Scan(&remaining, &status))
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT coalesce(sum(cost), 0) FROM views WHERE ad_id = 1`).Scan(&spent))
	assert.Equal(t, int64(4), remaining)
	assert.Equal(t, int64(7*15), spent)
	assert.Equal(t, string(domain.AdStatusCompleted), status)
}

func TestIntegrationDuplicateViews(t *testing.T) {
	pool := newTestPool(t)
	insertFixture(t, pool, 1000, 10, "")
	repo := NewAdRepository(pool, discardLogger())
	at := time.Now().UTC()

	const requests = 20
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		charged int
	)
	wg.Add(requests)
	for i := 0; i < requests; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.ChargeView(context.Background(), chargeReq("203.0.113.1", at))
			if err == nil {
				mu.Lock()
				charged++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, port.ErrDuplicateView)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, charged)

	// outside the window the viewer is charged again
	view, err := repo.ChargeView(context.Background(), chargeReq("203.0.113.1", at.Add(25*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, int64(9), view.PublisherID)
}

// TestIntegrationFailedViewInsertRollsBackCharge ensures the budget
// decrement is undone when the view row cannot be written.
func TestIntegrationFailedViewInsertRollsBackCharge(t *testing.T) {
	pool := newTestPool(t)
	insertFixture(t, pool, 100, 10, "")
	repo := NewAdRepository(pool, discardLogger())
	ctx := context.Background()

	_, err := pool.Exec(ctx, `ALTER TABLE views ADD CONSTRAINT views_reject_test_ip CHECK (viewer_ip <> '192.0.2.99')`)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), `ALTER TABLE views DROP CONSTRAINT IF EXISTS views_reject_test_ip`)
	})

	view, err := repo.ChargeView(ctx, chargeReq("192.0.2.99", time.Now().UTC()))
	require.Error(t, err)
	assert.Nil(t, view)
	assert.NotErrorIs(t, err, port.ErrInsufficientBudget)

	var remaining, count int64
	var status string
	require.NoError(t, pool.QueryRow(ctx, `SELECT remaining_budget, status FROM ads WHERE id = 1`).Scan(&remaining, &status))
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(*) FROM views`).Scan(&count))
	assert.Equal(t, int64(100), remaining)
	assert.Equal(t, string(domain.AdStatusApproved), status)
	assert.Zero(t, count)

	// the ad is still chargeable afterwards
	_, err = repo.ChargeView(ctx, chargeReq("192.0.2.1", time.Now().UTC()))
	require.NoError(t, err)
}

func TestIntegrationChargeUnknownZone(t *testing.T) {
	pool := newTestPool(t)
	insertFixture(t, pool, 100, 10, "")
	repo := NewAdRepository(pool, discardLogger())

	req := chargeReq("192.0.2.1", time.Now().UTC())
	req.ZoneID = 404
	_, err := repo.ChargeView(context.Background(), req)
	assert.ErrorIs(t, err, port.ErrZoneNotFound)
}

func TestIntegrationListServableAdsAndStats(t *testing.T) {
	pool := newTestPool(t)
	insertFixture(t, pool, 100, 10, `{"countries":["US"],"devices":["mobile"]}`)
	repo := NewAdRepository(pool, discardLogger())
	ctx := context.Background()

	zone, err := repo.GetZone(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.ZoneStatusActive, zone.Status)

	_, err = repo.GetZone(ctx, 404)
	assert.ErrorIs(t, err, port.ErrZoneNotFound)

	ads, err := repo.ListServableAds(ctx)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	require.NotNil(t, ads[0].Targeting)
	assert.Equal(t, []string{"US"}, ads[0].Targeting.Countries)

	at := time.Now().UTC()
	_, err = repo.ChargeView(ctx, chargeReq("203.0.113.5", at))
	require.NoError(t, err)

	adID := int64(1)
	stats, err := repo.GetStats(ctx, port.StatsReq{From: at.Add(-time.Minute), To: at.Add(time.Minute), AdID: &adID})
	require.NoError(t, err)
	assert.Equal(t, port.StatsResp{Views: 1, Cost: 10, Remaining: 90}, *stats)
}

func TestIntegrationGeoCacheUpsert(t *testing.T) {
	pool := newTestPool(t)
	repo := NewGeoCacheRepository(pool)
	ctx := context.Background()

	got, err := repo.GetGeo(ctx, "8.8.8.8")
	require.NoError(t, err)
	assert.Nil(t, got)

	first := time.Now().UTC().Truncate(time.Microsecond)
	entry := domain.GeoCacheEntry{
		GeoInfo:     domain.GeoInfo{IP: "8.8.8.8", Country: "US", Region: "CA", City: "Mountain View", Timezone: "America/Los_Angeles"},
		LastUpdated: first,
	}
	require.NoError(t, repo.UpsertGeo(ctx, entry))

	entry.City = "Palo Alto"
	entry.LastUpdated = first.Add(time.Hour)
	require.NoError(t, repo.UpsertGeo(ctx, entry))

	got, err = repo.GetGeo(ctx, "8.8.8.8")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Palo Alto", got.City)
	assert.True(t, got.LastUpdated.Equal(first.Add(time.Hour)))
}
