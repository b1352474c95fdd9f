package render

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adzone/internal/adapter/memory"
	"adzone/internal/core/domain"
	"adzone/internal/core/port"
)

func TestRenderBindsAdAndView(t *testing.T) {
	r := NewLiquidRenderer()
	ad := domain.Ad{
		ID:          3,
		Name:        "Tom & Jerry",
		CostPerView: 125,
		Creative:    `<a href="https://example.com/?v={{ view.id | urlencode }}">{{ ad.name | escape }} {{ ad.cost_per_view | money }}</a>`,
		UpdatedAt:   time.Unix(100, 0),
	}
	view := domain.View{ID: "v 1", ZoneID: 9}

	out, err := r.Render(context.Background(), ad, view)
	require.NoError(t, err)
	assert.Contains(t, out, `data-ad-id="3"`)
	assert.Contains(t, out, `?v=v+1`)
	assert.Contains(t, out, `Tom &amp; Jerry 1.25`)
}

func TestRenderEmptyCreative(t *testing.T) {
	out, err := NewLiquidRenderer().Render(context.Background(), domain.Ad{ID: 1}, domain.View{ID: "x"})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRenderParseError(t *testing.T) {
	ad := domain.Ad{ID: 2, Creative: `{% if ad.id %}unterminated`}
	_, err := NewLiquidRenderer().Render(context.Background(), ad, domain.View{ID: "x"})
	assert.Error(t, err)
}

func TestRenderReparsesChangedCreative(t *testing.T) {
	r := NewLiquidRenderer()
	ad := domain.Ad{ID: 4, Creative: `one`}

	out, err := r.Render(context.Background(), ad, domain.View{ID: "x"})
	require.NoError(t, err)
	assert.Contains(t, out, "one")

	ad.Creative = `two`
	out, err = r.Render(context.Background(), ad, domain.View{ID: "x"})
	require.NoError(t, err)
	assert.Contains(t, out, "two")
	assert.Equal(t, 2, r.cache.Len())
}

// TestRenderCacheStableAcrossCharges ensures charging an ad, which bumps its
// updated_at, reuses the parsed creative.
func TestRenderCacheStableAcrossCharges(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.PutZone(domain.Zone{ID: 1, PublisherID: 2, Status: domain.ZoneStatusActive})
	store.PutAd(domain.Ad{
		ID:              5,
		Status:          domain.AdStatusApproved,
		Budget:          1000,
		RemainingBudget: 1000,
		CostPerView:     1,
		Creative:        `<b>{{ ad.name }}</b>`,
		UpdatedAt:       time.Unix(1, 0),
	})
	r := NewLiquidRenderer()
	at := time.Unix(1000, 0)

	for i := 0; i < 50; i++ {
		ads, err := store.ListServableAds(ctx)
		require.NoError(t, err)
		require.Len(t, ads, 1)

		at = at.Add(time.Second)
		view, err := store.ChargeView(ctx, port.ChargeReq{
			AdID:     5,
			ZoneID:   1,
			ViewerIP: fmt.Sprintf("198.51.100.%d", i),
			Since:    at.Add(-24 * time.Hour),
			At:       at,
		})
		require.NoError(t, err)

		_, err = r.Render(ctx, ads[0], *view)
		require.NoError(t, err)
	}
	assert.Equal(t, 1, r.cache.Len())
}

func TestRenderCacheIsBounded(t *testing.T) {
	r := NewLiquidRenderer()
	for i := 0; i < TemplateCacheSize+10; i++ {
		_, err := r.Render(context.Background(), domain.Ad{ID: int64(i), Creative: "x"}, domain.View{ID: "v"})
		require.NoError(t, err)
	}
	assert.Equal(t, TemplateCacheSize, r.cache.Len())
}

func TestRenderSanitizesCreative(t *testing.T) {
	r := NewLiquidRenderer()
	ad := domain.Ad{
		ID:   6,
		Name: `<script>steal()</script>`,
		Creative: `<script>x()</script><img src="https://cdn.example.com/a.png" onerror="x()">` +
			`<a href="javascript:x()">bad</a><a href="https://example.com/">ok</a>{{ ad.name }}`,
	}

	out, err := r.Render(context.Background(), ad, domain.View{ID: "v"})
	require.NoError(t, err)
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "onerror")
	assert.NotContains(t, out, "javascript:")
	assert.Contains(t, out, `src="https://cdn.example.com/a.png"`)
	assert.Contains(t, out, `href="https://example.com/"`)
	assert.True(t, strings.HasPrefix(out, `<div class="adzone-ad" data-ad-id="6" data-view-id="v">`))
}
