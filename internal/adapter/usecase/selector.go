package usecase

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"time"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/core/targeting"
)

// Selector picks the ad to deliver into a zone.
type Selector struct {
	repo   port.AdRepository
	now    func() time.Time
	logger *slog.Logger
}

// NewSelector returns a Selector reading candidates from repo.
func NewSelector(repo port.AdRepository, now func() time.Time, logger *slog.Logger) *Selector {
	if now == nil {
		now = time.Now
	}
	return &Selector{repo: repo, now: now, logger: logger}
}

// SelectForZone returns the best servable ad whose targeting matches c, or
// nil when there is none. Unknown and inactive zones get no ad. Ties are
// broken by higher cost per view, then higher remaining budget, then lower
// id, so the result is deterministic for a given candidate set.
func (s *Selector) SelectForZone(ctx context.Context, zoneID int64, c domain.DeliveryContext) (*domain.Ad, error) {
	zone, err := s.repo.GetZone(ctx, zoneID)
	if errors.Is(err, port.ErrZoneNotFound) {
		s.logger.Debug("unknown zone", slog.Int64("zone_id", zoneID))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if zone.Status != domain.ZoneStatusActive {
		return nil, nil
	}

	ads, err := s.repo.ListServableAds(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	candidates := make([]domain.Ad, 0, len(ads))
	for _, ad := range ads {
		if !ad.Servable() {
			continue
		}
		if !targeting.Match(ad.Targeting, c, now) {
			continue
		}
		candidates = append(candidates, ad)
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	slices.SortFunc(candidates, rankAds)
	return &candidates[0], nil
}

func rankAds(a, b domain.Ad) int {
	if n := cmp.Compare(b.CostPerView, a.CostPerView); n != 0 {
		return n
	}
	if n := cmp.Compare(b.RemainingBudget, a.RemainingBudget); n != 0 {
		return n
	}
	return cmp.Compare(a.ID, b.ID)
}
