package domain

import "time"

// FallbackTimezone is used whenever the viewer location is unknown.
const FallbackTimezone = "UTC"

// GeoInfo is the location of an IP address. Empty strings mean unknown.
type GeoInfo struct {
	IP        string  `json:"ip"`
	Country   string  `json:"country"`
	Region    string  `json:"region"`
	City      string  `json:"city"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// FallbackGeo is the neutral location returned when a lookup fails.
func FallbackGeo(ip string) GeoInfo {
	return GeoInfo{IP: ip, Timezone: FallbackTimezone}
}

// Known reports whether at least one of country, region or city is set.
func (g GeoInfo) Known() bool {
	return g.Country != "" || g.Region != "" || g.City != ""
}

// GeoCacheEntry is a persisted lookup result keyed by IP.
type GeoCacheEntry struct {
	GeoInfo
	LastUpdated time.Time `json:"last_updated"`
}

// Fresh reports whether the entry is younger than ttl at now.
func (e GeoCacheEntry) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.LastUpdated) < ttl
}
