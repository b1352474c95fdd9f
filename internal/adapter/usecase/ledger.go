package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// DefaultDuplicateWindow is the trailing period in which a repeated view of
// the same ad in the same zone from the same IP is refused.
const DefaultDuplicateWindow = 24 * time.Hour

// Ledger meters ad budgets one view at a time on top of a ViewLedger.
type Ledger struct {
	store   port.ViewLedger
	window  time.Duration
	now     func() time.Time
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewLedger returns a Ledger. A non-positive window selects
// DefaultDuplicateWindow.
func NewLedger(store port.ViewLedger, window time.Duration, now func() time.Time, m *metrics.Metrics, logger *slog.Logger) *Ledger {
	if window <= 0 {
		window = DefaultDuplicateWindow
	}
	if now == nil {
		now = time.Now
	}
	return &Ledger{store: store, window: window, now: now, logger: logger, metrics: m}
}

// Charge records one view of adID in zoneID by viewerIP and decrements the
// ad budget by its cost per view. It returns port.ErrDuplicateView,
// port.ErrInsufficientBudget or port.ErrZoneNotFound when the view must not
// be charged.
func (l *Ledger) Charge(ctx context.Context, adID, zoneID int64, viewerIP string) (*domain.View, error) {
	start := time.Now()
	at := l.now().UTC()
	view, err := l.store.ChargeView(ctx, port.ChargeReq{
		AdID:     adID,
		ZoneID:   zoneID,
		ViewerIP: viewerIP,
		Since:    at.Add(-l.window),
		At:       at,
	})
	elapsed := time.Since(start)
	switch {
	case err == nil:
		l.metrics.RecordCharge("charged", elapsed)
		return view, nil
	case errors.Is(err, port.ErrDuplicateView):
		l.metrics.RecordCharge("duplicate", elapsed)
	case errors.Is(err, port.ErrInsufficientBudget):
		l.metrics.RecordCharge("insufficient_budget", elapsed)
	case errors.Is(err, port.ErrZoneNotFound):
		l.metrics.RecordCharge("zone_not_found", elapsed)
	default:
		l.metrics.RecordCharge("error", elapsed)
		l.logger.Error("charge failed",
			slog.Int64("ad_id", adID),
			slog.Int64("zone_id", zoneID),
			slog.Any("error", err))
	}
	return nil, err
}
