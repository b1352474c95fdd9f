package httpadapter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"adzone/internal/core/port"
	"adzone/internal/metrics"
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options tunes the HTTP adapter.
type Options struct {
	// TrustProxy reads the viewer IP from proxy headers.
	TrustProxy bool
	// AllowedOrigins is passed to the CORS middleware.
	AllowedOrigins []string
	// RequestTimeout bounds every request; zero disables it.
	RequestTimeout time.Duration
	// Health is pinged by /healthz; nil always reports healthy.
	Health Pinger
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds a DeliveryUseCase to execute business logic, the metrics registry
// and a logger for structured logging. Routes are registered on a chi.Router
// for convenient method handling.
type Handler struct {
	svc     port.DeliveryUseCase
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    Options
	router  chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.DeliveryUseCase, m *metrics.Metrics, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{svc: svc, metrics: m, logger: logger, opts: opts}
	if len(opts.AllowedOrigins) == 0 {
		h.opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.instrument)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
		ExposedHeaders: []string{viewIDHeader},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/zones/{zoneID}/serve", h.handleServe)
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if h.opts.Health != nil {
		if err := h.opts.Health.Ping(r.Context()); err != nil {
			h.logger.Error("health check failed", slog.Any("error", err))
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
