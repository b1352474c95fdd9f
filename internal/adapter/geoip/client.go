package geoip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/netip"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"adzone/internal/config/configs"
	"adzone/internal/core/domain"
	"adzone/internal/metrics"
)

const (
	apiName           = "geoip"
	responseReadLimit = 64 << 10
)

var (
	ErrMissingAPIKey = errors.New("geoip: api key is not configured")
	ErrInvalidIP     = errors.New("geoip: invalid ip address")
	ErrNonPublicIP   = errors.New("geoip: ip address is private or reserved")
)

// reserved lists special-purpose ranges that netip does not classify as
// private but that no geolocation service can place.
var reserved = []netip.Prefix{
	netip.MustParsePrefix("0.0.0.0/8"),
	netip.MustParsePrefix("100.64.0.0/10"),
	netip.MustParsePrefix("192.0.0.0/24"),
	netip.MustParsePrefix("192.0.2.0/24"),
	netip.MustParsePrefix("198.18.0.0/15"),
	netip.MustParsePrefix("198.51.100.0/24"),
	netip.MustParsePrefix("203.0.113.0/24"),
	netip.MustParsePrefix("240.0.0.0/4"),
	netip.MustParsePrefix("2001:db8::/32"),
}

// Client implements port.GeoLocator against an HTTP JSON geolocation API
// answering GET {baseURL}/{ip}?key={apiKey}.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewClient creates a geolocation client from configuration.
func NewClient(cfg configs.Geo, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  strings.TrimSpace(cfg.APIKey),
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		logger:  logger,
		metrics: m,
	}
}

type lookupResponse struct {
	CountryCode string  `json:"country_code"`
	Region      string  `json:"region"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
}

// Lookup fetches the location of ip. Private and reserved addresses are
// rejected without a network call.
func (c *Client) Lookup(ctx context.Context, ip string) (*domain.GeoInfo, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	addr, err := publicAddr(ip)
	if err != nil {
		return nil, err
	}

	// a saturated limiter is a lookup failure, not a reason to block the request
	if !c.limiter.Allow() {
		c.metrics.RecordExternalAPIFailure(apiName, "rate_limit")
		return nil, errors.New("geoip: rate limit exceeded")
	}

	start := time.Now()
	endpoint := fmt.Sprintf("%s/%s?key=%s", c.baseURL, url.PathEscape(addr.String()), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "request_creation")
		return nil, fmt.Errorf("geoip: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "network_error")
		return nil, fmt.Errorf("geoip: lookup %s: %w", addr, err)
	}
	defer resp.Body.Close()

	duration := time.Since(start)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.metrics.RecordExternalAPICall(apiName, fmt.Sprintf("error_%d", resp.StatusCode), duration)
		return nil, fmt.Errorf("geoip: api returned status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err = json.NewDecoder(io.LimitReader(resp.Body, responseReadLimit)).Decode(&body); err != nil {
		c.metrics.RecordExternalAPIFailure(apiName, "json_parse")
		return nil, fmt.Errorf("geoip: parse response: %w", err)
	}
	if body.CountryCode == "" && body.Region == "" && body.City == "" {
		c.metrics.RecordExternalAPIFailure(apiName, "empty_location")
		return nil, errors.New("geoip: response carries no location")
	}

	c.metrics.RecordExternalAPICall(apiName, "success", duration)
	c.logger.Debug("geoip lookup", slog.String("ip", addr.String()), slog.Duration("duration", duration))

	tz := body.Timezone
	if tz == "" {
		tz = domain.FallbackTimezone
	}
	return &domain.GeoInfo{
		IP:        addr.String(),
		Country:   strings.ToUpper(body.CountryCode),
		Region:    body.Region,
		City:      body.City,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
		Timezone:  tz,
	}, nil
}

// publicAddr parses ip and rejects addresses that cannot be geolocated.
func publicAddr(ip string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(strings.TrimSpace(ip))
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %q", ErrInvalidIP, ip)
	}
	addr = addr.Unmap()
	if !addr.IsGlobalUnicast() || addr.IsPrivate() {
		return netip.Addr{}, fmt.Errorf("%w: %s", ErrNonPublicIP, addr)
	}
	for _, p := range reserved {
		if p.Contains(addr) {
			return netip.Addr{}, fmt.Errorf("%w: %s", ErrNonPublicIP, addr)
		}
	}
	return addr, nil
}
