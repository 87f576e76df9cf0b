package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/dblair1027/prop-engine-api/internal/api/handler"
	"github.com/dblair1027/prop-engine-api/internal/api/respond"
	"github.com/dblair1027/prop-engine-api/internal/cache"
	"github.com/dblair1027/prop-engine-api/internal/config"
	"github.com/dblair1027/prop-engine-api/internal/source"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(store *source.Store, appCache *cache.Cache, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(RecoverMiddleware(logger))
	r.Use(middleware.Compress(5)) // gzip

	// CORS — the dashboard UI is the only consumer; reads only.
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// Everything here is a read; anything else is rejected outright.
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		respond.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.WriteError(w, http.StatusNotFound, "not found")
	})

	// --- Handler dependencies ---
	h := handler.New(store, appCache, cfg, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/edge", h.GetEdgeCandidates)
		r.Get("/trending", h.GetTrendingPlayers)
		r.Get("/confidence/{player}", h.GetConfidence)
		r.Get("/schedule", h.GetSchedule)
	})

	return r
}
