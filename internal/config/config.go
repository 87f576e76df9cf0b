// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config struct — populated from environment variables.
type Config struct {
	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Payload source: HTTP base URL of the published data files, or a local
	// directory. The base URL wins when both are set.
	DataBaseURL    string
	DataDir        string
	StatsFile      string
	RostersFile    string
	ScheduleFile   string
	SourceName     string // provenance tag echoed in response meta
	SourceRequests int    // outbound fetches per minute

	// Ingest
	BDLAPIKey string
	OutputDir string

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:4321",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		DataBaseURL:    envOr("DATA_BASE_URL", ""),
		DataDir:        envOr("DATA_DIR", "data"),
		StatsFile:      envOr("STATS_FILE", "player_stats.json"),
		RostersFile:    envOr("ROSTERS_FILE", "rosters.json"),
		ScheduleFile:   envOr("SCHEDULE_FILE", "schedule_master.json"),
		SourceName:     envOr("DATA_SOURCE", "bdl"),
		SourceRequests: envInt("SOURCE_REQUESTS_PER_MINUTE", 600),

		BDLAPIKey: envOr("BDL_API_KEY", envOr("BALLDONTLIE_API_KEY", "")),
		OutputDir: envOr("INGEST_OUTPUT_DIR", "data"),

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}
	return cfg, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
