// Command api is the Prop Engine Data API server.
//
// Usage:
//
//	prop-api
//	API_PORT=8080 prop-api

// @title Prop Engine Data API
// @version 1.0.0
// @description Research dashboard API deriving edge candidates, trending players, and confidence scores from published player-stat payloads. All endpoints are read-only.
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/dblair1027/prop-engine-api/internal/api"
	"github.com/dblair1027/prop-engine-api/internal/cache"
	"github.com/dblair1027/prop-engine-api/internal/config"
	"github.com/dblair1027/prop-engine-api/internal/source"

	_ "github.com/dblair1027/prop-engine-api/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Payload source: published HTTP files or a local data directory.
	store := source.New(cfg.DataBaseURL, cfg.DataDir, source.Files{
		Stats:    cfg.StatsFile,
		Rosters:  cfg.RostersFile,
		Schedule: cfg.ScheduleFile,
	}, cfg.SourceRequests, logger)
	if cfg.DataBaseURL != "" {
		logger.Info("Payload source: HTTP", "base_url", cfg.DataBaseURL)
	} else {
		logger.Info("Payload source: local directory", "dir", cfg.DataDir)
	}

	// Initialize cache
	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	// Create router
	router := api.NewRouter(store, appCache, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Prop Engine Data API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
