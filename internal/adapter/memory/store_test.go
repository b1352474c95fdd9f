package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

var t0 = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func seeded(budget, cost int64) *Store {
	s := NewStore()
	s.PutZone(domain.Zone{ID: 1, PublisherID: 7, Status: domain.ZoneStatusActive})
	s.PutAd(domain.Ad{ID: 10, Status: domain.AdStatusApproved, Budget: budget, RemainingBudget: budget, CostPerView: cost})
	return s
}

func charge(s *Store, ip string, at time.Time) (*domain.View, error) {
	return s.ChargeView(context.Background(), port.ChargeReq{
		AdID:     10,
		ZoneID:   1,
		ViewerIP: ip,
		Since:    at.Add(-24 * time.Hour),
		At:       at,
	})
}

func TestChargeViewRecordsCostAndPublisher(t *testing.T) {
	s := seeded(100, 30)

	view, err := charge(s, "1.1.1.1", t0)
	require.NoError(t, err)
	assert.Equal(t, int64(30), view.Cost)
	assert.Equal(t, int64(7), view.PublisherID)
	assert.NotEmpty(t, view.ID)

	ad, _ := s.Ad(10)
	assert.Equal(t, int64(70), ad.RemainingBudget)
	assert.Equal(t, domain.AdStatusApproved, ad.Status)
}

func TestChargeViewDuplicateWindow(t *testing.T) {
	s := seeded(100, 10)

	_, err := charge(s, "1.1.1.1", t0)
	require.NoError(t, err)

	_, err = charge(s, "1.1.1.1", t0.Add(time.Hour))
	assert.ErrorIs(t, err, port.ErrDuplicateView)
	assert.Len(t, s.Views(10), 1)

	_, err = charge(s, "1.1.1.1", t0.Add(25*time.Hour))
	assert.NoError(t, err)
	assert.Len(t, s.Views(10), 2)
}

func TestChargeViewUnknownZone(t *testing.T) {
	s := seeded(100, 30)

	view, err := s.ChargeView(context.Background(), port.ChargeReq{
		AdID: 10, ZoneID: 404, ViewerIP: "1.1.1.1", Since: t0.Add(-time.Hour), At: t0,
	})
	assert.ErrorIs(t, err, port.ErrZoneNotFound)
	assert.Nil(t, view)

	ad, _ := s.Ad(10)
	assert.Equal(t, int64(100), ad.RemainingBudget)
	assert.Empty(t, s.Views(10))
}

func TestChargeViewCompletesExhaustedAd(t *testing.T) {
	s := seeded(25, 10)

	_, err := charge(s, "a", t0)
	require.NoError(t, err)
	_, err = charge(s, "b", t0)
	require.NoError(t, err)

	ad, _ := s.Ad(10)
	assert.Equal(t, int64(5), ad.RemainingBudget)
	assert.Equal(t, domain.AdStatusCompleted, ad.Status)

	_, err = charge(s, "c", t0)
	assert.ErrorIs(t, err, port.ErrInsufficientBudget)

	ads, err := s.ListServableAds(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ads)
}

// TestConcurrentChargesNeverOverspend launches more charges than the budget
// can fund and checks conservation afterwards.
func TestConcurrentChargesNeverOverspend(t *testing.T) {
	const (
		cost    = int64(3)
		fundFor = 40
		workers = 100
	)
	s := seeded(cost*fundFor+2, cost)

	var (
		wg           sync.WaitGroup
		mu           sync.Mutex
		charged      int
		insufficient int
	)
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			_, err := charge(s, fmt.Sprintf("10.0.0.%d", i), t0)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				charged++
			case errors.Is(err, port.ErrInsufficientBudget):
				insufficient++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, fundFor, charged)
	assert.Equal(t, workers-fundFor, insufficient)

	ad, _ := s.Ad(10)
	var spent int64
	for _, v := range s.Views(10) {
		spent += v.Cost
	}
	assert.Equal(t, ad.Budget-ad.RemainingBudget, spent)
	assert.GreaterOrEqual(t, ad.RemainingBudget, int64(0))
}

func TestConcurrentIdenticalChargesRecordOneView(t *testing.T) {
	s := seeded(1000, 1)

	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		go func() {
			defer wg.Done()
			_, _ = charge(s, "192.0.2.1", t0)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Views(10), 1)
	ad, _ := s.Ad(10)
	assert.Equal(t, int64(999), ad.RemainingBudget)
}

func TestGetStats(t *testing.T) {
	s := seeded(100, 10)
	_, err := charge(s, "a", t0)
	require.NoError(t, err)
	_, err = charge(s, "b", t0.Add(time.Hour))
	require.NoError(t, err)

	id := int64(10)
	stats, err := s.GetStats(context.Background(), port.StatsReq{From: t0.Add(-time.Minute), To: t0.Add(time.Minute), AdID: &id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Views)
	assert.Equal(t, int64(10), stats.Cost)
	assert.Equal(t, int64(80), stats.Remaining)
}
