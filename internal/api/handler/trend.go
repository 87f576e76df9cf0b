package handler

import (
	"fmt"
	"net/http"

	"github.com/dblair1027/prop-engine-api/internal/stats"
)

// GetTrendingPlayers returns players ranked purely by recent-form average.
// @Summary Trending players
// @Description Players ranked by their recent-window average for a stat, no baseline comparison.
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
// @Router /api/v1/trending [get]
func (h *Handler) GetTrendingPlayers(w http.ResponseWriter, r *http.Request) {
	p := queryParams(r)
	cacheKey := fmt.Sprintf("trend:%s:%d:%d:%d:%s:%s", p.Stat, p.LastN, p.MinGames, p.Limit, p.Team, p.Position)
	if h.serveCached(w, r, cacheKey) {
		return
	}

	records, roster, ok := h.loadPipeline(w, r)
	if !ok {
		return
	}

	results, total := stats.ComputeTrending(records, roster, p)
	envelope := stats.NewTrendEnvelope(results, total, p, h.cfg.SourceName)
	h.writeEnvelope(w, cacheKey, envelope)
}
