package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// Delivery provides business logic for serving ads into zones. It
// orchestrates context resolution, selection, charging and rendering to
// implement the port.DeliveryUseCase interface.
type Delivery struct {
	resolver *ContextResolver
	selector *Selector
	ledger   *Ledger
	renderer port.CreativeRenderer
	repo     port.AdRepository
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

// NewDelivery wires the delivery use case.
func NewDelivery(
	resolver *ContextResolver,
	selector *Selector,
	ledger *Ledger,
	renderer port.CreativeRenderer,
	repo port.AdRepository,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Delivery {
	return &Delivery{
		resolver: resolver,
		selector: selector,
		ledger:   ledger,
		renderer: renderer,
		repo:     repo,
		logger:   logger,
		metrics:  m,
	}
}

// Serve resolves the request context, selects an ad for the zone, charges
// one view and renders the creative. It returns nil when no ad is
// delivered, including when the selected ad turns out to be exhausted or
// already seen by this viewer; another ad is not tried in the same call.
// An error is returned only on persistence failures.
func (d *Delivery) Serve(ctx context.Context, req port.ServeReq) (*port.RenderPayload, error) {
	dc := d.resolver.Resolve(ctx, req.IP, req.UserAgent, req.AcceptLanguage)

	ad, err := d.selector.SelectForZone(ctx, req.ZoneID, dc)
	if err != nil {
		d.metrics.RecordDelivery("error")
		return nil, fmt.Errorf("select ad for zone %d: %w", req.ZoneID, err)
	}
	if ad == nil {
		d.metrics.RecordDelivery("no_ad")
		return nil, nil
	}

	view, err := d.ledger.Charge(ctx, ad.ID, req.ZoneID, dc.IP)
	switch {
	case errors.Is(err, port.ErrInsufficientBudget):
		d.metrics.RecordDelivery("insufficient_budget")
		return nil, nil
	case errors.Is(err, port.ErrDuplicateView):
		d.metrics.RecordDelivery("duplicate")
		return nil, nil
	case errors.Is(err, port.ErrZoneNotFound):
		// zone removed after selection
		d.metrics.RecordDelivery("no_ad")
		return nil, nil
	case err != nil:
		d.metrics.RecordDelivery("error")
		return nil, fmt.Errorf("charge ad %d: %w", ad.ID, err)
	}

	html, err := d.renderer.Render(ctx, *ad, *view)
	if err != nil {
		// the view is already charged; deliver an empty fragment
		d.logger.Warn("render failed",
			slog.Int64("ad_id", ad.ID),
			slog.String("view_id", view.ID),
			slog.Any("error", err))
		html = ""
	}
	d.metrics.RecordDelivery("served")
	return &port.RenderPayload{
		AdID:   ad.ID,
		ViewID: view.ID,
		HTML:   html,
	}, nil
}

// GetStats returns aggregated views and spend in a period.
func (d *Delivery) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return d.repo.GetStats(ctx, req)
}
