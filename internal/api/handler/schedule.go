package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dblair1027/prop-engine-api/internal/api/respond"
	"github.com/dblair1027/prop-engine-api/internal/source"
	"github.com/dblair1027/prop-engine-api/internal/stats"
)

// GetSchedule returns master-schedule games, optionally bounded by a date
// range and team.
// @Summary Schedule range query
// @Description Games from the master schedule within an inclusive date range. Dates must be YYYY-MM-DD.
// @Tags schedule
// @Produce json
// @Param start query string false "Range start (YYYY-MM-DD)"
// @Param end query string false "Range end (YYYY-MM-DD)"
// @Param team query string false "Team abbreviation"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/schedule [get]
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start := strings.TrimSpace(q.Get("start"))
	end := strings.TrimSpace(q.Get("end"))
	team := q.Get("team")

	// Explicit date validation: range bounds are rejected immediately,
	// unlike the lenient per-record date handling in the normalizer.
	if start != "" && !stats.ValidDate(start) {
		respond.WriteError(w, http.StatusBadRequest, "start must match YYYY-MM-DD")
		return
	}
	if end != "" && !stats.ValidDate(end) {
		respond.WriteError(w, http.StatusBadRequest, "end must match YYYY-MM-DD")
		return
	}

	raw, err := h.store.Schedule(r.Context())
	if err != nil {
		h.logger.Error("schedule payload fetch failed", "error", err)
		if errors.Is(err, source.ErrUpstreamUnavailable) {
			respond.WriteError(w, http.StatusBadGateway, "schedule source unavailable")
		} else {
			respond.WriteError(w, http.StatusInternalServerError, "computation failed")
		}
		return
	}

	games := stats.FilterGames(stats.ParseSchedule(raw), start, end, team)
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"data": games,
		"meta": map[string]interface{}{
			"totalGames": len(games),
			"filters": map[string]string{
				"start": start,
				"end":   end,
				"team":  strings.ToUpper(strings.TrimSpace(team)),
			},
			"source": h.cfg.SourceName,
		},
	})
}
