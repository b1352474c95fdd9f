package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the Prometheus collectors of the delivery engine. Each
// instance owns its registry so tests can create as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Delivery metrics
	DeliveriesTotal *prometheus.CounterVec
	ChargesTotal    *prometheus.CounterVec
	ChargeDuration  prometheus.Histogram
	GeoLookupsTotal *prometheus.CounterVec

	// External API metrics
	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec
	ExternalAPIFailures *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		DeliveriesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adzone_deliveries_total",
				Help: "Zone requests by outcome",
			},
			[]string{"outcome"},
		),

		ChargesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adzone_charges_total",
				Help: "Budget charge attempts by result",
			},
			[]string{"result"},
		),

		ChargeDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "adzone_charge_duration_seconds",
				Help:    "Duration of the charge transaction in seconds",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),

		GeoLookupsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adzone_geo_lookups_total",
				Help: "Geolocation resolutions by cache result",
			},
			[]string{"result"},
		),

		ExternalAPICalls: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_calls_total",
				Help: "Total number of external API calls",
			},
			[]string{"api", "status"},
		),

		ExternalAPIDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "external_api_duration_seconds",
				Help:    "External API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"api"},
		),

		ExternalAPIFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "external_api_failures_total",
				Help: "Total number of external API failures",
			},
			[]string{"api", "error_type"},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordDelivery counts one zone request outcome.
func (m *Metrics) RecordDelivery(outcome string) {
	m.DeliveriesTotal.WithLabelValues(outcome).Inc()
}

// RecordCharge counts one charge attempt and its duration.
func (m *Metrics) RecordCharge(result string, duration time.Duration) {
	m.ChargesTotal.WithLabelValues(result).Inc()
	m.ChargeDuration.Observe(duration.Seconds())
}

// RecordGeoLookup counts how a geolocation was resolved.
func (m *Metrics) RecordGeoLookup(result string) {
	m.GeoLookupsTotal.WithLabelValues(result).Inc()
}

// External API call metrics
func (m *Metrics) RecordExternalAPICall(api, status string, duration time.Duration) {
	m.ExternalAPICalls.WithLabelValues(api, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(api).Observe(duration.Seconds())
}

// External API failure metrics
func (m *Metrics) RecordExternalAPIFailure(api, errorType string) {
	m.ExternalAPIFailures.WithLabelValues(api, errorType).Inc()
}
