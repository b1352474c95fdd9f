package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

var validate = validator.New()

// AdRepository implements port.AdRepository and port.ViewLedger using
// pgxpool for PostgreSQL.
type AdRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool, logger *slog.Logger) *AdRepository {
	return &AdRepository{pool: pool, logger: logger}
}

// GetZone returns a zone by id.
func (r *AdRepository) GetZone(ctx context.Context, id int64) (*domain.Zone, error) {
	var z domain.Zone
	err := r.pool.QueryRow(ctx, `SELECT id, publisher_id, name, status FROM zones WHERE id = $1`, id).
		Scan(&z.ID, &z.PublisherID, &z.Name, &z.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrZoneNotFound
	}
	if err != nil {
		return nil, err
	}
	return &z, nil
}

// ListServableAds returns approved ads that can fund one more view together
// with their targeting rules. Ads with a malformed rule are skipped.
func (r *AdRepository) ListServableAds(ctx context.Context) ([]domain.Ad, error) {
	query := `
        SELECT
            a.id,
            a.advertiser_id,
            a.name,
            a.status,
            a.budget,
            a.remaining_budget,
            a.cost_per_view,
            a.creative,
            a.created_at,
            a.updated_at,
            t.data
        FROM ads a
        LEFT JOIN ad_targeting t ON t.ad_id = a.id
        WHERE a.status = 'approved'
          AND a.remaining_budget >= a.cost_per_view
        ORDER BY a.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	type rawAd struct {
		Ad           domain.Ad
		TargetingRaw []byte
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawAd, error) {
		var ra rawAd
		err := row.Scan(
			&ra.Ad.ID,
			&ra.Ad.AdvertiserID,
			&ra.Ad.Name,
			&ra.Ad.Status,
			&ra.Ad.Budget,
			&ra.Ad.RemainingBudget,
			&ra.Ad.CostPerView,
			&ra.Ad.Creative,
			&ra.Ad.CreatedAt,
			&ra.Ad.UpdatedAt,
			&ra.TargetingRaw,
		)
		return ra, err
	})
	if err != nil {
		return nil, err
	}

	ads := make([]domain.Ad, 0, len(raw))
	for _, ra := range raw {
		rule, err := decodeTargeting(ra.TargetingRaw)
		if err != nil {
			r.logger.Warn("skipping ad with invalid targeting", slog.Int64("ad_id", ra.Ad.ID), slog.Any("error", err))
			continue
		}
		ra.Ad.Targeting = rule
		ads = append(ads, ra.Ad)
	}
	return ads, nil
}

// decodeTargeting parses a stored rule. A NULL row means no targeting.
func decodeTargeting(data []byte) (*domain.TargetingRule, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var rule domain.TargetingRule
	if err := json.Unmarshal(data, &rule); err != nil {
		return nil, err
	}
	if err := validate.Struct(rule); err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetStats returns aggregated views in a period.
func (r *AdRepository) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, `
        SELECT COALESCE(count(*), 0), COALESCE(sum(cost), 0)
        FROM views
        WHERE viewed_at >= $1 AND viewed_at <= $2
          AND ($3::bigint IS NULL OR ad_id = $3)`,
		req.From, req.To, req.AdID).Scan(&resp.Views, &resp.Cost)
	if err != nil {
		return nil, err
	}
	err = r.pool.QueryRow(ctx, `
        SELECT COALESCE(sum(remaining_budget), 0)
        FROM ads
        WHERE $1::bigint IS NULL OR id = $1`, req.AdID).Scan(&resp.Remaining)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
