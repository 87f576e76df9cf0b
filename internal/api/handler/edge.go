package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dblair1027/prop-engine-api/internal/api/respond"
	"github.com/dblair1027/prop-engine-api/internal/cache"
	"github.com/dblair1027/prop-engine-api/internal/source"
	"github.com/dblair1027/prop-engine-api/internal/stats"
)

// GetEdgeCandidates returns players whose recent form beats their baseline.
// @Summary Edge candidates
// @Description Players whose recent-window average for a stat exceeds their season baseline, ranked by delta.
// @Tags rankings
// @Produce json
// @Param stat query string false "Stat key" Enums(pts, reb, ast, stl, blk, tov) default(pts)
// @Param last_n query int false "Recent window size, clamped to [2,20]" default(5)
// @Param min_games query int false "Minimum valid samples, clamped to [last_n+1,82]"
// @Param team query string false "Exact team abbreviation filter"
// @Param position query string false "Position substring filter"
// @Param limit query int false "Result cap, clamped to [1,200]" default(50)
// @Success 200 {object} stats.Envelope
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/edge [get]
func (h *Handler) GetEdgeCandidates(w http.ResponseWriter, r *http.Request) {
	p := queryParams(r)
	cacheKey := fmt.Sprintf("edge:%s:%d:%d:%d:%s:%s", p.Stat, p.LastN, p.MinGames, p.Limit, p.Team, p.Position)
	if h.serveCached(w, r, cacheKey) {
		return
	}

	records, roster, ok := h.loadPipeline(w, r)
	if !ok {
		return
	}

	results, total := stats.ComputeEdges(records, roster, p)
	envelope := stats.NewEdgeEnvelope(results, total, p, h.cfg.SourceName)
	h.writeEnvelope(w, cacheKey, envelope)
}

// loadPipeline fetches and normalizes the stats payload and builds the
// roster index. A stats fetch failure is fatal to the request (502); a
// roster failure degrades to an empty index.
func (h *Handler) loadPipeline(w http.ResponseWriter, r *http.Request) ([]stats.PlayerStatRecord, stats.RosterIndex, bool) {
	raw, err := h.store.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats payload fetch failed", "error", err)
		if errors.Is(err, source.ErrUpstreamUnavailable) {
			respond.WriteError(w, http.StatusBadGateway, "stats source unavailable")
		} else {
			respond.WriteError(w, http.StatusInternalServerError, "computation failed")
		}
		return nil, stats.RosterIndex{}, false
	}

	var roster stats.RosterIndex
	if rosterRaw, err := h.store.Rosters(r.Context()); err != nil {
		h.logger.Warn("roster payload unavailable, filters degrade", "error", err)
		roster = stats.BuildRosterIndex(nil)
	} else {
		roster = stats.BuildRosterIndex(rosterRaw)
	}

	return stats.Normalize(raw), roster, true
}

// serveCached replies from the cache, honoring If-None-Match.
func (h *Handler) serveCached(w http.ResponseWriter, r *http.Request, key string) bool {
	data, etag, ok := h.cache.Get(key)
	if !ok {
		return false
	}
	if cache.CheckETagMatch(r.Header.Get("If-None-Match"), etag) {
		respond.WriteNotModified(w, etag)
		return true
	}
	respond.WriteJSON(w, data, etag, cache.TTLComputed, true)
	return true
}

func (h *Handler) writeEnvelope(w http.ResponseWriter, key string, envelope stats.Envelope) {
	data, err := json.Marshal(envelope)
	if err != nil {
		h.logger.Error("envelope encode failed", "error", err)
		respond.WriteError(w, http.StatusInternalServerError, "computation failed")
		return
	}
	etag := h.cache.Set(key, data, cache.TTLComputed)
	respond.WriteJSON(w, data, etag, cache.TTLComputed, false)
}
