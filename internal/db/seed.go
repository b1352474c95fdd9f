package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"adzone/internal/core/domain"
)

// DemoData returns the demo zones and ads used for local development: four
// zones for two publishers and one approved ad per targeting variant.
func DemoData(now time.Time) ([]domain.Zone, []domain.Ad) {
	zones := make([]domain.Zone, 0, 4)
	for i := int64(1); i <= 4; i++ {
		zones = append(zones, domain.Zone{
			ID:          i,
			PublisherID: (i + 1) / 2,
			Name:        fmt.Sprintf("Zone %d", i),
			Status:      domain.ZoneStatusActive,
		})
	}

	targetings := []*domain.TargetingRule{
		nil,
		{Countries: []string{"US", "CA"}, Devices: []string{domain.DeviceMobile, domain.DeviceTablet}},
		{Languages: []string{"en", "de"}, Browsers: []string{"chrome", "firefox", "safari"}},
		{Schedule: &domain.Schedule{Hours: []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17}, Weekdays: []int{1, 2, 3, 4, 5}, Timezone: "America/New_York"}},
		{Countries: []string{"DE"}, Cities: []string{"Berlin"}},
	}

	ads := make([]domain.Ad, 0, len(targetings))
	for i, rule := range targetings {
		id := int64(i + 1)
		ads = append(ads, domain.Ad{
			ID:              id,
			AdvertiserID:    1,
			Name:            fmt.Sprintf("Ad %d", id),
			Status:          domain.AdStatusApproved,
			Budget:          100000, // 1000.00 units
			RemainingBudget: 100000,
			CostPerView:     5 * id,
			Creative:        fmt.Sprintf(`<a href="https://example.com/landing/{{ ad.id }}?view={{ view.id }}">Demo ad %d</a>`, id),
			Targeting:       rule,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	}
	return zones, ads
}

// Seed inserts the demo data into the adzone database. It is idempotent:
// rows that already exist are left untouched.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	zones, ads := DemoData(time.Now().UTC())

	for _, z := range zones {
		_, err := db.Exec(ctx, `INSERT INTO zones (id, publisher_id, name, status)
VALUES ($1,$2,$3,$4) ON CONFLICT DO NOTHING`, z.ID, z.PublisherID, z.Name, string(z.Status))
		if err != nil {
			return err
		}
	}

	for _, ad := range ads {
		_, err := db.Exec(ctx, `INSERT INTO ads
    (id, advertiser_id, name, status, budget, remaining_budget, cost_per_view, creative, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$9) ON CONFLICT DO NOTHING`,
			ad.ID, ad.AdvertiserID, ad.Name, string(ad.Status), ad.Budget, ad.RemainingBudget, ad.CostPerView, ad.Creative, ad.CreatedAt)
		if err != nil {
			return err
		}
		if ad.Targeting == nil {
			continue
		}
		tgtJSON, err := json.Marshal(ad.Targeting)
		if err != nil {
			return err
		}
		_, err = db.Exec(ctx, `INSERT INTO ad_targeting (ad_id, data)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, ad.ID, tgtJSON)
		if err != nil {
			return err
		}
	}

	// keep sequences ahead of the explicit ids
	_, err := db.Exec(ctx, `SELECT setval('zones_id_seq', (SELECT max(id) FROM zones)), setval('ads_id_seq', (SELECT max(id) FROM ads))`)
	return err
}
