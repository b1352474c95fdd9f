package usecase

import (
	"context"

	"adzone/internal/core/domain"
)

// GeoResolver resolves an IP into a location. It never fails; unknown
// locations come back as the UTC fallback.
type GeoResolver interface {
	Resolve(ctx context.Context, ip string) domain.GeoInfo
}

// ContextResolver builds the delivery context of a request from its raw
// signals.
type ContextResolver struct {
	geo GeoResolver
}

// NewContextResolver returns a resolver backed by geo.
func NewContextResolver(geo GeoResolver) *ContextResolver {
	return &ContextResolver{geo: geo}
}

// Resolve combines the geolocation of ip with the client classification
// derived from the User-Agent and Accept-Language headers.
func (r *ContextResolver) Resolve(ctx context.Context, ip, userAgent, acceptLanguage string) domain.DeliveryContext {
	geo := r.geo.Resolve(ctx, ip)
	tz := geo.Timezone
	if tz == "" {
		tz = domain.FallbackTimezone
	}
	return domain.DeliveryContext{
		IP:       ip,
		Country:  geo.Country,
		Region:   geo.Region,
		City:     geo.City,
		Timezone: tz,
		Device:   ClassifyDevice(userAgent),
		Browser:  ClassifyBrowser(userAgent),
		OS:       ClassifyOS(userAgent),
		Language: PrimaryLanguage(acceptLanguage),
	}
}
