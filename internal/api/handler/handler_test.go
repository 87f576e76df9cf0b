package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dblair1027/prop-engine-api/internal/api"
	"github.com/dblair1027/prop-engine-api/internal/cache"
	"github.com/dblair1027/prop-engine-api/internal/config"
	"github.com/dblair1027/prop-engine-api/internal/source"
)

const statsFixture = `{
	"Hot Hand":  {"team": "SAC", "pts": 20, "l5_pts": 26, "games": 30},
	"Jane Doe":  {"team": "GSW", "pts": 20, "l5_pts": 18, "games": 10},
	"Big Star":  {"id": 7, "team": "LAL", "pts": 25.0, "min": 35.0, "usage": 28.0,
		"def_rank": 5, "l5_pts": 29.0, "opp_streak": "W4", "games": 40}
}`

const rostersFixture = `[
	{"id": 7, "name": "Big Star", "team": "LAL", "pos": "F"},
	{"name": "Hot Hand", "team": "SAC", "pos": "G"},
	{"name": "Jane Doe", "team": "GSW", "pos": "G-F"}
]`

const scheduleFixture = `[
	{"game_id": "g_20260301_001", "game_date": "2026-03-01", "home_team_abbr": "LAL", "away_team_abbr": "BOS"},
	{"game_id": "g_20260305_001", "game_date": "2026-03-05", "home_team_abbr": "BOS", "away_team_abbr": "DEN"}
]`

func newTestServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	cfg := &config.Config{
		CORSAllowOrigins:  []string{"*"},
		RateLimitEnabled:  false,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		SourceName:        "bdl",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := source.New("", dir, source.Files{}, 600, logger)

	router := api.NewRouter(store, cache.New(true), cfg, logger)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func allFixtures() map[string]string {
	return map[string]string{
		"player_stats.json":    statsFixture,
		"rosters.json":         rostersFixture,
		"schedule_master.json": scheduleFixture,
	}
}

func getJSON(t *testing.T, srv *httptest.Server, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestEdgeEndpoint(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	status, body := getJSON(t, srv, "/api/v1/edge?stat=pts")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].([]interface{})
	require.Len(t, data, 2, "Jane Doe's negative delta excludes her")

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Hot Hand", first["name"])
	assert.Equal(t, 6.0, first["delta"])
	second := data[1].(map[string]interface{})
	assert.Equal(t, "Big Star", second["name"])
	assert.Equal(t, "F", second["position"], "position joins from the roster")

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 3.0, meta["totalPlayers"])
	assert.Equal(t, 2.0, meta["edgePlayers"])
	assert.Equal(t, "pts", meta["stat"])
	assert.Equal(t, 5.0, meta["last_n"])
	assert.Equal(t, "bdl", meta["source"])
}

func TestEdgeEndpointEchoesClampedParams(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	_, body := getJSON(t, srv, "/api/v1/edge?last_n=99&min_games=1&limit=999&stat=bogus")
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 20.0, meta["last_n"])
	assert.Equal(t, 21.0, meta["min_games"])
	assert.Equal(t, 200.0, meta["limit"])
	assert.Equal(t, "pts", meta["stat"])
}

func TestEdgeEndpointTeamFilter(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	_, body := getJSON(t, srv, "/api/v1/edge?team=sac")
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "Hot Hand", data[0].(map[string]interface{})["name"])

	meta := body["meta"].(map[string]interface{})
	filters := meta["filters"].(map[string]interface{})
	assert.Equal(t, "SAC", filters["team"])
}

func TestTrendingEndpoint(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	status, body := getJSON(t, srv, "/api/v1/trending")
	require.Equal(t, http.StatusOK, status)

	data := body["data"].([]interface{})
	require.Len(t, data, 3, "trending keeps negative-delta players")
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Big Star", first["name"])
	assert.Equal(t, 29.0, first["avg"])

	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 3.0, meta["trendingPlayers"])
	_, hasEdge := meta["edgePlayers"]
	assert.False(t, hasEdge)
}

func TestConfidenceEndpoint(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	status, body := getJSON(t, srv, "/api/v1/confidence/Big%20Star")
	require.Equal(t, http.StatusOK, status)

	// usage 28*0.6 clamps to +15, minutes 35 → +15, def_rank 5 → -8,
	// trend (29-25=4) → +15, role → +10, opponent winning → -3: 94.
	assert.Equal(t, 94.0, body["score"])
	assert.Equal(t, "GREEN", body["tier"])
	assert.Equal(t, "Big Star", body["name"])
	assert.Equal(t, "7", body["playerId"])
}

func TestConfidenceEndpointNotFound(t *testing.T) {
	srv := newTestServer(t, allFixtures())
	status, body := getJSON(t, srv, "/api/v1/confidence/Nobody")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "player not found", body["error"])
}

func TestScheduleEndpoint(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	status, body := getJSON(t, srv, "/api/v1/schedule?start=2026-03-02&end=2026-03-31")
	require.Equal(t, http.StatusOK, status)
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	assert.Equal(t, "g_20260305_001", data[0].(map[string]interface{})["game_id"])
}

func TestScheduleEndpointRejectsMalformedDates(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	status, body := getJSON(t, srv, "/api/v1/schedule?start=03/01/2026")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["error"], "YYYY-MM-DD")

	status, _ = getJSON(t, srv, "/api/v1/schedule?end=soon")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestEdgeEndpointUpstreamUnavailable(t *testing.T) {
	srv := newTestServer(t, map[string]string{
		"rosters.json": rostersFixture,
	})

	status, body := getJSON(t, srv, "/api/v1/edge")
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "stats source unavailable", body["error"])
}

// A bare string payload is not an error: it normalizes to zero records and
// the query returns an empty data array.
func TestEdgeEndpointMalformedPayload(t *testing.T) {
	files := allFixtures()
	files["player_stats.json"] = `"not a payload"`
	srv := newTestServer(t, files)

	status, body := getJSON(t, srv, "/api/v1/edge")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["data"])
	meta := body["meta"].(map[string]interface{})
	assert.Equal(t, 0.0, meta["totalPlayers"])
}

func TestEdgeEndpointRosterDegrades(t *testing.T) {
	files := allFixtures()
	delete(files, "rosters.json")
	srv := newTestServer(t, files)

	// Unfiltered queries still work without a roster.
	status, body := getJSON(t, srv, "/api/v1/edge")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, body["data"], 2)

	// Active filters match nothing.
	_, body = getJSON(t, srv, "/api/v1/edge?team=SAC")
	assert.Empty(t, body["data"])
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	resp, err := http.Post(srv.URL+"/api/v1/edge", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "method not allowed", body["error"])
}

func TestEdgeEndpointETag(t *testing.T) {
	srv := newTestServer(t, allFixtures())

	resp, err := http.Get(srv.URL + "/api/v1/edge")
	require.NoError(t, err)
	resp.Body.Close()
	etag := resp.Header.Get("ETag")
	require.NotEmpty(t, etag)
	assert.Equal(t, "MISS", resp.Header.Get("X-Cache"))

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/edge", nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp2.Body.Close()
	assert.Equal(t, http.StatusNotModified, resp2.StatusCode)
}
