// Package source resolves the raw JSON payloads the derivation engine
// consumes: player stats, rosters, and the master schedule. Payloads are
// published as flat files (GitHub Pages style) and are fetched per request;
// the core never parses here, bytes pass through untouched.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ErrUpstreamUnavailable marks a payload that could not be fetched or read.
// Handlers map it to 502 for the primary stats payload and degrade for the
// roster and schedule.
var ErrUpstreamUnavailable = errors.New("upstream payload unavailable")

// Store fetches payloads from an HTTP base URL when configured, otherwise
// from a local data directory.
type Store struct {
	baseURL string
	dir     string
	files   Files
	client  *http.Client
	limiter *rate.Limiter
	logger  *slog.Logger
}

// Files names the three payload files relative to the base URL or data dir.
type Files struct {
	Stats    string
	Rosters  string
	Schedule string
}

// DefaultFiles matches the names the ingest CLI writes.
func DefaultFiles() Files {
	return Files{
		Stats:    "player_stats.json",
		Rosters:  "rosters.json",
		Schedule: "schedule_master.json",
	}
}

// New creates a payload store. baseURL takes precedence over dir when both
// are set. requestsPerMinute bounds outbound fetches.
func New(baseURL, dir string, files Files, requestsPerMinute int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	if files == (Files{}) {
		files = DefaultFiles()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Store{
		baseURL: strings.TrimRight(baseURL, "/"),
		dir:     dir,
		files:   files,
		client:  &http.Client{Timeout: 30 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

// Stats returns the raw player statistics payload.
func (s *Store) Stats(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, s.files.Stats)
}

// Rosters returns the raw roster payload.
func (s *Store) Rosters(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, s.files.Rosters)
}

// Schedule returns the raw master-schedule payload.
func (s *Store) Schedule(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, s.files.Schedule)
}

func (s *Store) fetch(ctx context.Context, name string) ([]byte, error) {
	if s.baseURL != "" {
		return s.fetchHTTP(ctx, name)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %v", name, ErrUpstreamUnavailable, err)
	}
	return data, nil
}

func (s *Store) fetchHTTP(ctx context.Context, name string) ([]byte, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := s.baseURL + "/" + url.PathEscape(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w: %v", name, ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn("payload fetch returned non-success", "file", name, "status", resp.StatusCode)
		return nil, fmt.Errorf("fetch %s: status %d: %w", name, resp.StatusCode, ErrUpstreamUnavailable)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s body: %w: %v", name, ErrUpstreamUnavailable, err)
	}
	return data, nil
}
