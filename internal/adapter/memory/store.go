// Package memory is a process-local implementation of the persistence ports.
// It keeps the same charging semantics as the PostgreSQL adapter: the budget
// check and the decrement happen under one lock together with the duplicate
// check and the view insert.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

// Store implements port.AdRepository, port.ViewLedger and
// port.GeoCacheRepository in memory.
type Store struct {
	mu    sync.Mutex
	zones map[int64]domain.Zone
	ads   map[int64]domain.Ad
	views []domain.View
	geo   map[string]domain.GeoCacheEntry
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		zones: make(map[int64]domain.Zone),
		ads:   make(map[int64]domain.Ad),
		geo:   make(map[string]domain.GeoCacheEntry),
	}
}

// PutZone inserts or replaces a zone.
func (s *Store) PutZone(z domain.Zone) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zones[z.ID] = z
}

// PutAd inserts or replaces an ad.
func (s *Store) PutAd(ad domain.Ad) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ads[ad.ID] = ad
}

// Ad returns a copy of the stored ad.
func (s *Store) Ad(id int64) (domain.Ad, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ad, ok := s.ads[id]
	return ad, ok
}

// Views returns a copy of the views recorded for adID.
func (s *Store) Views(adID int64) []domain.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.View
	for _, v := range s.views {
		if v.AdID == adID {
			out = append(out, v)
		}
	}
	return out
}

// GetZone returns a zone by id.
func (s *Store) GetZone(_ context.Context, id int64) (*domain.Zone, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	z, ok := s.zones[id]
	if !ok {
		return nil, port.ErrZoneNotFound
	}
	return &z, nil
}

// ListServableAds returns approved ads that can fund one more view, ordered
// by id.
func (s *Store) ListServableAds(_ context.Context) ([]domain.Ad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Ad, 0, len(s.ads))
	for _, ad := range s.ads {
		if ad.Servable() {
			out = append(out, ad)
		}
	}
	slices.SortFunc(out, func(a, b domain.Ad) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

// ChargeView suppresses duplicates, decrements the budget and appends the
// view atomically.
func (s *Store) ChargeView(_ context.Context, req port.ChargeReq) (*domain.View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.views {
		if v.AdID == req.AdID && v.ZoneID == req.ZoneID && v.ViewerIP == req.ViewerIP && v.ViewedAt.After(req.Since) {
			return nil, port.ErrDuplicateView
		}
	}

	zone, ok := s.zones[req.ZoneID]
	if !ok {
		return nil, port.ErrZoneNotFound
	}

	ad, ok := s.ads[req.AdID]
	if !ok || ad.Status != domain.AdStatusApproved || ad.CostPerView <= 0 || ad.RemainingBudget < ad.CostPerView {
		return nil, port.ErrInsufficientBudget
	}
	ad.RemainingBudget -= ad.CostPerView
	if ad.RemainingBudget < ad.CostPerView {
		ad.Status = domain.AdStatusCompleted
	}
	ad.UpdatedAt = req.At
	s.ads[ad.ID] = ad

	view := domain.View{
		ID:          uuid.NewString(),
		AdID:        ad.ID,
		ZoneID:      req.ZoneID,
		PublisherID: zone.PublisherID,
		ViewerIP:    req.ViewerIP,
		Cost:        ad.CostPerView,
		ViewedAt:    req.At,
	}
	s.views = append(s.views, view)
	return &view, nil
}

// GetStats aggregates views in [From, To].
func (s *Store) GetStats(_ context.Context, req port.StatsReq) (*port.StatsResp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var resp port.StatsResp
	for _, v := range s.views {
		if req.AdID != nil && v.AdID != *req.AdID {
			continue
		}
		if v.ViewedAt.Before(req.From) || v.ViewedAt.After(req.To) {
			continue
		}
		resp.Views++
		resp.Cost += v.Cost
	}
	for _, ad := range s.ads {
		if req.AdID != nil && ad.ID != *req.AdID {
			continue
		}
		resp.Remaining += ad.RemainingBudget
	}
	return &resp, nil
}

// GetGeo returns the cached entry for ip or nil.
func (s *Store) GetGeo(_ context.Context, ip string) (*domain.GeoCacheEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.geo[ip]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// UpsertGeo stores entry keyed by its IP.
func (s *Store) UpsertGeo(_ context.Context, entry domain.GeoCacheEntry) error {
	if entry.LastUpdated.IsZero() {
		entry.LastUpdated = time.Now()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.geo[entry.IP] = entry
	return nil
}
