package postgres

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

// chargeQuery is the only statement that mutates remaining_budget. The WHERE
// clause re-checks the budget atomically with the decrement; an ad that can
// no longer fund a view afterwards is marked completed in the same write.
const chargeQuery = `
    UPDATE ads
    SET remaining_budget = remaining_budget - cost_per_view,
        status = CASE WHEN remaining_budget - cost_per_view < cost_per_view THEN 'completed' ELSE status END,
        updated_at = $2
    WHERE id = $1
      AND status = 'approved'
      AND remaining_budget >= cost_per_view
    RETURNING cost_per_view`

// ChargeView suppresses duplicate views, charges the ad and records the view
// in a single transaction. The transaction holds an advisory lock keyed by
// (ad, zone, ip) so two identical requests cannot both pass the duplicate
// check.
func (r *AdRepository) ChargeView(ctx context.Context, req port.ChargeReq) (view *domain.View, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, viewLockKey(req)); err != nil {
		return nil, fmt.Errorf("lock view key: %w", err)
	}

	var duplicate bool
	err = tx.QueryRow(ctx, `
        SELECT EXISTS (
            SELECT 1 FROM views
            WHERE ad_id = $1 AND zone_id = $2 AND viewer_ip = $3 AND viewed_at > $4
        )`, req.AdID, req.ZoneID, req.ViewerIP, req.Since).Scan(&duplicate)
	if err != nil {
		return nil, fmt.Errorf("check duplicate view: %w", err)
	}
	if duplicate {
		err = port.ErrDuplicateView
		return nil, err
	}

	var publisherID int64
	err = tx.QueryRow(ctx, `SELECT publisher_id FROM zones WHERE id = $1`, req.ZoneID).Scan(&publisherID)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrZoneNotFound
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var cost int64
	err = tx.QueryRow(ctx, chargeQuery, req.AdID, req.At).Scan(&cost)
	if errors.Is(err, pgx.ErrNoRows) {
		err = port.ErrInsufficientBudget
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("charge ad: %w", err)
	}

	v := domain.View{
		ID:          uuid.NewString(),
		AdID:        req.AdID,
		ZoneID:      req.ZoneID,
		PublisherID: publisherID,
		ViewerIP:    req.ViewerIP,
		Cost:        cost,
		ViewedAt:    req.At,
	}
	_, err = tx.Exec(ctx, `INSERT INTO views (id, ad_id, zone_id, publisher_id, viewer_ip, cost, viewed_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		v.ID, v.AdID, v.ZoneID, v.PublisherID, v.ViewerIP, v.Cost, v.ViewedAt)
	if err != nil {
		return nil, fmt.Errorf("insert view: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &v, nil
}

// viewLockKey derives a deterministic advisory lock id from the view triple.
func viewLockKey(req port.ChargeReq) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "view:%d:%d:%s", req.AdID, req.ZoneID, req.ViewerIP)
	return int64(h.Sum64())
}
