// Package handler provides HTTP handlers for all API endpoints.
// Each request resolves its payloads through the source store, runs the
// pure computations in internal/stats, and caches the encoded envelope.
// No ambient state: everything a computation needs arrives as an argument.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dblair1027/prop-engine-api/internal/api/respond"
	"github.com/dblair1027/prop-engine-api/internal/cache"
	"github.com/dblair1027/prop-engine-api/internal/config"
	"github.com/dblair1027/prop-engine-api/internal/source"
	"github.com/dblair1027/prop-engine-api/internal/stats"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store   *source.Store
	cache   *cache.Cache
	cfg     *config.Config
	logger  *slog.Logger
	weights stats.Weights
}

// New creates a Handler with shared dependencies.
func New(store *source.Store, c *cache.Cache, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:   store,
		cache:   c,
		cfg:     cfg,
		logger:  logger,
		weights: stats.DefaultWeights(),
	}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, and status.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Prop Engine Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"source":  h.cfg.SourceName,
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
