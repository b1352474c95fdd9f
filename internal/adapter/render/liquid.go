package render

import (
	"context"
	"fmt"
	"hash/fnv"
	"html"
	"net/url"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/microcosm-cc/bluemonday"
	"github.com/osteele/liquid"

	"adzone/internal/core/domain"
)

// TemplateCacheSize bounds the number of parsed creatives kept in memory.
const TemplateCacheSize = 1024

// LiquidRenderer implements port.CreativeRenderer. A creative is a Liquid
// template bound with the ad, the charged view and the zone. The output is
// sanitized and wrapped in a container element identifying the ad.
type LiquidRenderer struct {
	engine *liquid.Engine
	policy *bluemonday.Policy
	cache  *lru.Cache[templateKey, *liquid.Template]
}

// templateKey changes only when the creative text of an ad changes.
type templateKey struct {
	adID int64
	sum  uint64
}

// NewLiquidRenderer creates a renderer with the adzone filters registered.
func NewLiquidRenderer() *LiquidRenderer {
	engine := liquid.NewEngine()

	// HTML escape: {{ ad.name | escape }}
	engine.RegisterFilter("escape", func(s string) string {
		return html.EscapeString(s)
	})

	// URL encode: {{ view.id | urlencode }}
	engine.RegisterFilter("urlencode", func(s string) string {
		return url.QueryEscape(s)
	})

	// Money in major units: {{ ad.cost_per_view | money }}
	engine.RegisterFilter("money", func(cents int64) string {
		sign := ""
		if cents < 0 {
			sign, cents = "-", -cents
		}
		return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
	})

	cache, err := lru.New[templateKey, *liquid.Template](TemplateCacheSize)
	if err != nil {
		panic(err) // only fails on a non-positive size
	}

	policy := bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &LiquidRenderer{engine: engine, policy: policy, cache: cache}
}

// Render produces the markup of ad for view. Parsed templates are cached per
// creative text. Scripts, event handler attributes and unsafe URLs are
// stripped from the output.
func (r *LiquidRenderer) Render(_ context.Context, ad domain.Ad, view domain.View) (string, error) {
	if strings.TrimSpace(ad.Creative) == "" {
		return "", nil
	}
	tpl, err := r.template(ad)
	if err != nil {
		return "", err
	}
	body, serr := tpl.RenderString(bindings(ad, view))
	if serr != nil {
		return "", fmt.Errorf("render creative of ad %d: %w", ad.ID, serr)
	}
	return fmt.Sprintf(`<div class="adzone-ad" data-ad-id="%d" data-view-id="%s">%s</div>`,
		ad.ID, html.EscapeString(view.ID), r.policy.Sanitize(body)), nil
}

func (r *LiquidRenderer) template(ad domain.Ad) (*liquid.Template, error) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(ad.Creative))
	key := templateKey{adID: ad.ID, sum: h.Sum64()}
	if tpl, ok := r.cache.Get(key); ok {
		return tpl, nil
	}
	tpl, serr := r.engine.ParseString(ad.Creative)
	if serr != nil {
		return nil, fmt.Errorf("parse creative of ad %d: %w", ad.ID, serr)
	}
	r.cache.Add(key, tpl)
	return tpl, nil
}

func bindings(ad domain.Ad, view domain.View) map[string]any {
	return map[string]any{
		"ad": map[string]any{
			"id":            ad.ID,
			"name":          ad.Name,
			"advertiser_id": ad.AdvertiserID,
			"cost_per_view": ad.CostPerView,
		},
		"view": map[string]any{
			"id":        view.ID,
			"viewed_at": view.ViewedAt,
		},
		"zone": map[string]any{
			"id":           view.ZoneID,
			"publisher_id": view.PublisherID,
		},
	}
}
