package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/dblair1027/prop-engine-api/internal/api/respond"
	"github.com/dblair1027/prop-engine-api/internal/source"
	"github.com/dblair1027/prop-engine-api/internal/stats"
)

// GetConfidence scores one player's short-term outlook from their raw
// stat snapshot.
// @Summary Confidence score
// @Description Heuristic 0-100 confidence score and RED/YELLOW/GREEN tier for a player, from minutes, usage, matchup, trend, rest, and opponent momentum.
// @Tags rankings
// @Produce json
// @Param player path string true "Player name"
// @Success 200 {object} stats.ConfidenceResult
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/v1/confidence/{player} [get]
func (h *Handler) GetConfidence(w http.ResponseWriter, r *http.Request) {
	player := chi.URLParam(r, "player")
	if unescaped, err := url.PathUnescape(player); err == nil {
		player = unescaped
	}
	if player == "" {
		respond.WriteError(w, http.StatusBadRequest, "player name is required")
		return
	}

	raw, err := h.store.Stats(r.Context())
	if err != nil {
		h.logger.Error("stats payload fetch failed", "error", err)
		if errors.Is(err, source.ErrUpstreamUnavailable) {
			respond.WriteError(w, http.StatusBadGateway, "stats source unavailable")
		} else {
			respond.WriteError(w, http.StatusInternalServerError, "computation failed")
		}
		return
	}

	snap, id, name, found := stats.SnapshotFor(raw, player)
	if !found {
		respond.WriteError(w, http.StatusNotFound, "player not found")
		return
	}

	score, tier := stats.ScoreSnapshot(snap, h.weights)
	respond.WriteJSONObject(w, http.StatusOK, stats.ConfidenceResult{
		PlayerID: id,
		Name:     name,
		Snapshot: snap,
		Score:    score,
		Tier:     tier,
	})
}
