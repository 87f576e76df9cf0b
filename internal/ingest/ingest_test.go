package ingest

import (
	"context"
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

	"github.com/dblair1027/prop-engine-api/internal/provider/bdl"
	"github.com/dblair1027/prop-engine-api/internal/provider/nba"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestSeasonFor(t *testing.T) {
	oct := time.Date(2025, time.October, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2025, SeasonFor(oct))

	mar := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2025, SeasonFor(mar))

	sep := time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2024, SeasonFor(sep))
}

func TestParseMinutes(t *testing.T) {
	assert.InDelta(t, 34.2, parseMinutes("34:12"), 1e-9)
	assert.Equal(t, 28.0, parseMinutes("28"))
	assert.Equal(t, 0.0, parseMinutes(""))
	assert.Equal(t, 0.0, parseMinutes("n/a"))
}

func TestTrailingAverages(t *testing.T) {
	mkRow := func(id int, date string, pts float64) bdl.GameStat {
		var r bdl.GameStat
		r.Player.ID = id
		r.Game.Date = date
		r.Pts = pts
		return r
	}
	// Seven games; only the five most recent count.
	logs := []bdl.GameStat{
		mkRow(1, "2026-01-01", 100), // oldest two are dropped
		mkRow(1, "2026-01-02", 100),
		mkRow(1, "2026-01-03", 10),
		mkRow(1, "2026-01-04", 20),
		mkRow(1, "2026-01-05", 30),
		mkRow(1, "2026-01-06", 20),
		mkRow(1, "2026-01-07", 20),
	}

	avgs := trailingAverages(logs)
	require.Contains(t, avgs, 1)
	assert.InDelta(t, 20.0, avgs[1]["pts"], 1e-9)
}

// bdlStub serves the three BDL endpoints the builders hit.
func bdlStub(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/players/active", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cursor") == "" {
			io.WriteString(w, `{"data":[
				{"id":1,"first_name":"Big","last_name":"Star","position":"F",
				 "team":{"abbreviation":"LAL"}}],
				"meta":{"next_cursor":25}}`)
			return
		}
		io.WriteString(w, `{"data":[
			{"id":2,"first_name":"Hot","last_name":"Hand","position":"G",
			 "team":{"abbreviation":"SAC"}}],
			"meta":{}}`)
	})

	mux.HandleFunc("/season_averages", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("season") == "2025" {
			io.WriteString(w, `{"data":[
				{"player_id":1,"season":2025,"games_played":40,"min":"35:30",
				 "pts":25.0,"reb":8.0,"ast":6.0,"stl":1.0,"blk":0.5,"turnover":3.0}]}`)
			return
		}
		io.WriteString(w, `{"data":[
			{"player_id":2,"season":2024,"games_played":70,"min":"30:00",
			 "pts":18.0,"reb":4.0,"ast":5.0,"stl":1.5,"blk":0.2,"turnover":2.0}]}`)
	})

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[
			{"player":{"id":1},"game":{"id":10,"date":"2026-01-05"},"pts":30,"reb":9,"ast":7},
			{"player":{"id":1},"game":{"id":11,"date":"2026-01-07"},"pts":28,"reb":7,"ast":5}],
			"meta":{}}`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestBuildRosters(t *testing.T) {
	srv := bdlStub(t)
	client := bdl.NewClient(srv.URL, "test-key", 6000, testLogger)
	dir := t.TempDir()

	result := BuildRosters(context.Background(), client, dir, testLogger)
	require.Empty(t, result.Errors)
	assert.Equal(t, 2, result.PlayersWritten)
	assert.Equal(t, 1, result.FilesWritten)

	data, err := os.ReadFile(filepath.Join(dir, RostersFile))
	require.NoError(t, err)
	var rows []rosterRow
	require.NoError(t, json.Unmarshal(data, &rows))
	require.Len(t, rows, 2)
	// LAL sorts before SAC.
	assert.Equal(t, "Big Star", rows[0].Name)
	assert.Equal(t, "LAL", rows[0].Team)
	assert.Equal(t, "Hot Hand", rows[1].Name)
}

func TestBuildStats(t *testing.T) {
	srv := bdlStub(t)
	client := bdl.NewClient(srv.URL, "test-key", 6000, testLogger)
	dir := t.TempDir()

	BuildRosters(context.Background(), client, dir, testLogger)
	result := BuildStats(context.Background(), client, dir, 2025, true, testLogger)
	require.Empty(t, result.Errors)
	assert.Equal(t, 2, result.PlayersWritten)

	data, err := os.ReadFile(filepath.Join(dir, StatsFile))
	require.NoError(t, err)
	var out map[string]statsRow
	require.NoError(t, json.Unmarshal(data, &out))

	star, ok := out["Big Star"]
	require.True(t, ok)
	assert.Equal(t, 25.0, star.Pts)
	assert.Equal(t, 40, star.Games)
	assert.InDelta(t, 35.5, star.Min, 1e-9)
	require.NotNil(t, star.L5Pts)
	assert.Equal(t, 29.0, *star.L5Pts)

	// Hot Hand has no current-season row; the previous season backfills.
	hand, ok := out["Hot Hand"]
	require.True(t, ok)
	assert.Equal(t, 2024, hand.Season)
	assert.Equal(t, 18.0, hand.Pts)
	assert.Nil(t, hand.L5Pts)
}

func TestBuildStatsMissingRoster(t *testing.T) {
	srv := bdlStub(t)
	client := bdl.NewClient(srv.URL, "test-key", 6000, testLogger)

	result := BuildStats(context.Background(), client, t.TempDir(), 2025, false, testLogger)
	require.NotEmpty(t, result.Errors)
	assert.Zero(t, result.FilesWritten)
}

func TestBuildSchedule(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"leagueSchedule":{"gameDates":[
			{"gameDate":"10/21/2025 00:00:00","games":[
				{"gameId":"0022500001","gameTimeET":"7:30 pm ET",
				 "homeTeam":{"teamTricode":"BOS"},"awayTeam":{"teamTricode":"NYK"}},
				{"gameId":"0022500002",
				 "homeTeam":{"teamTricode":"LAL"},"awayTeam":{"teamTricode":"GSW"}}]}]}}`)
	}))
	defer feed.Close()

	client := nba.NewClient(feed.URL, testLogger)
	dir := t.TempDir()

	result := BuildSchedule(context.Background(), client, dir, testLogger)
	require.Empty(t, result.Errors)
	assert.Equal(t, 2, result.GamesWritten)

	data, err := os.ReadFile(filepath.Join(dir, ScheduleFile))
	require.NoError(t, err)
	var games []nba.Game
	require.NoError(t, json.Unmarshal(data, &games))
	require.Len(t, games, 2)
	assert.Equal(t, "g_20251021_001", games[0].GameID)
	assert.Equal(t, "2025-10-21", games[0].GameDate)
	assert.Equal(t, "7:30 pm ET", games[0].TimeET)
	assert.Equal(t, "g_20251021_002", games[1].GameID)
	assert.Equal(t, "TBD", games[1].TimeET)
	assert.Equal(t, "Scheduled", games[1].Status)
}
