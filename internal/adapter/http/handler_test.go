package httpadapter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"adzone/internal/core/port"
	"adzone/internal/core/port/mocks"
	"adzone/internal/metrics"
)

func newTestHandler(t *testing.T, opts Options) (*mocks.MockDeliveryUseCase, http.Handler) {
	t.Helper()
	svc := mocks.NewMockDeliveryUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, metrics.New(), logger, opts).Router()
}

func TestServeWritesFragment(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().Serve(mock.Anything, port.ServeReq{
		ZoneID:         42,
		IP:             "203.0.113.7",
		UserAgent:      "test-agent",
		AcceptLanguage: "de-DE",
	}).Return(&port.RenderPayload{AdID: 1, ViewID: "view-1", HTML: "<p>hi</p>"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/42/serve", nil)
	req.RemoteAddr = "203.0.113.7:5555"
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Accept-Language", "de-DE")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>hi</p>", rec.Body.String())
	assert.Equal(t, "view-1", rec.Header().Get(viewIDHeader))
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/html"))
}

func TestServeNoAd(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().Serve(mock.Anything, mock.AnythingOfType("port.ServeReq")).Return(nil, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/zones/1/serve", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestServeStorageFailure(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().Serve(mock.Anything, mock.AnythingOfType("port.ServeReq")).
		Return(nil, errors.New("connection reset"))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/zones/1/serve", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, unavailableBody, rec.Body.String())
}

func TestServeInvalidZone(t *testing.T) {
	_, h := newTestHandler(t, Options{})
	for _, id := range []string{"abc", "0", "-3"} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/zones/"+id+"/serve", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, id)
	}
}

func TestServeTrustsProxyHeaders(t *testing.T) {
	svc, h := newTestHandler(t, Options{TrustProxy: true})
	svc.EXPECT().Serve(mock.Anything, mock.MatchedBy(func(req port.ServeReq) bool {
		return req.IP == "198.51.100.4"
	})).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zones/1/serve", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.4, 10.0.0.1")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name    string
		trusted bool
		headers map[string]string
		remote  string
		want    string
	}{
		{"remote addr", false, nil, "192.0.2.1:1234", "192.0.2.1"},
		{"untrusted ignores xff", false, map[string]string{"X-Forwarded-For": "198.51.100.4"}, "192.0.2.1:1234", "192.0.2.1"},
		{"first forwarded hop", true, map[string]string{"X-Forwarded-For": " 198.51.100.4 , 10.0.0.1"}, "192.0.2.1:1234", "198.51.100.4"},
		{"real ip", true, map[string]string{"X-Real-IP": "198.51.100.9"}, "192.0.2.1:1234", "198.51.100.9"},
		{"ipv6 remote", false, nil, "[2001:db8::1]:443", "2001:db8::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, clientIP(r, tt.trusted))
		})
	}
}

func TestStatsOverview(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)
	svc.EXPECT().GetStats(mock.Anything, mock.MatchedBy(func(req port.StatsReq) bool {
		return req.From.Equal(from) && req.To.Equal(to) && req.AdID != nil && *req.AdID == 7
	})).Return(&port.StatsResp{Views: 3, Cost: 75, Remaining: 25}, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/stats/overview?from=2024-01-01T00:00:00Z&to=2024-01-03T00:00:00Z&ad_id=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"views":3,"cost":75,"remaining":25}`, rec.Body.String())
}

func TestStatsOverviewRejectsBadParams(t *testing.T) {
	_, h := newTestHandler(t, Options{})
	for _, q := range []string{
		"from=yesterday",
		"to=tomorrow",
		"ad_id=x",
		"from=2024-01-03T00:00:00Z&to=2024-01-01T00:00:00Z",
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?"+q, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
	}
}

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthz(t *testing.T) {
	_, h := newTestHandler(t, Options{Health: pingFunc(func(context.Context) error { return nil })})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	_, h = newTestHandler(t, Options{Health: pingFunc(func(context.Context) error { return errors.New("down") })})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpointCountsRequests(t *testing.T) {
	svc, h := newTestHandler(t, Options{})
	svc.EXPECT().Serve(mock.Anything, mock.Anything).Return(nil, nil)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/zones/1/serve", nil))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `endpoint="/api/v1/zones/{zoneID}/serve"`)
}
