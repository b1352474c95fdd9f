package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"adzone/internal/core/port"
)

// handleStatsOverview reports delivery totals for the advertiser dashboard:
// the number of charged views and their summed cost with viewed_at in
// [from, to], plus the remaining budget. `from` and `to` are RFC3339 and
// default to the last 24 hours; `ad_id` narrows all three figures to one ad,
// otherwise they cover every ad. Remaining budget is the current balance,
// not a value at `to`. Malformed parameters or `from` after `to` result in
// HTTP 400 and storage failures in HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	if req.From.After(req.To) {
		http.Error(w, "'from' is after 'to'", http.StatusBadRequest)
		return
	}

	if aid := q.Get("ad_id"); aid != "" {
		id, err := strconv.ParseInt(aid, 10, 64)
		if err != nil {
			http.Error(w, "invalid ad_id", http.StatusBadRequest)
			return
		}
		req.AdID = &id
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
