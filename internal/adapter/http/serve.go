package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"adzone/internal/core/port"
)

const (
	viewIDHeader    = "X-Adzone-View-ID"
	unavailableBody = "<!-- adzone: unavailable -->"
)

// handleServe delivers an ad fragment into the {zoneID} zone. On success it
// writes the rendered HTML and the view id header. If no ad is available it
// returns HTTP 204 No Content. A malformed zone id results in HTTP 400 and
// storage failures in HTTP 500 with a comment body the embedding page can
// ignore.
func (h *Handler) handleServe(w http.ResponseWriter, r *http.Request) {
	zoneID, err := strconv.ParseInt(chi.URLParam(r, "zoneID"), 10, 64)
	if err != nil || zoneID <= 0 {
		http.Error(w, "invalid zone id", http.StatusBadRequest)
		return
	}

	payload, err := h.svc.Serve(r.Context(), port.ServeReq{
		ZoneID:         zoneID,
		IP:             clientIP(r, h.opts.TrustProxy),
		UserAgent:      r.UserAgent(),
		AcceptLanguage: r.Header.Get("Accept-Language"),
	})
	if err != nil {
		h.logger.Error("serve error",
			slog.Int64("zone_id", zoneID),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.Any("error", err))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(unavailableBody))
		return
	}
	if payload == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set(viewIDHeader, payload.ViewID)
	if _, err = w.Write([]byte(payload.HTML)); err != nil {
		h.logger.Error("write response error", slog.Any("error", err))
	}
}
