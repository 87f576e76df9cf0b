package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dblair1027/prop-engine-api/internal/provider/bdl"
)

// StatsFile is the published player stats payload name.
const StatsFile = "player_stats.json"

// recentWindow is the trailing-game span behind the l5_* fields.
const recentWindow = 5

// statsRow is the published aggregate for one player, keyed by name in the
// output document.
type statsRow struct {
	ID     int     `json:"id"`
	Team   string  `json:"team"`
	Season int     `json:"season"`
	Games  int     `json:"games"`
	Min    float64 `json:"min"`
	Pts    float64 `json:"pts"`
	Reb    float64 `json:"reb"`
	Ast    float64 `json:"ast"`
	Stl    float64 `json:"stl"`
	Blk    float64 `json:"blk"`
	Tov    float64 `json:"tov"`

	L5Pts *float64 `json:"l5_pts,omitempty"`
	L5Reb *float64 `json:"l5_reb,omitempty"`
	L5Ast *float64 `json:"l5_ast,omitempty"`
	L5Stl *float64 `json:"l5_stl,omitempty"`
	L5Blk *float64 `json:"l5_blk,omitempty"`
	L5Tov *float64 `json:"l5_tov,omitempty"`
}

// SeasonFor maps a date to its BDL season year: October onward belongs to
// the season starting that year, earlier months to the prior one.
func SeasonFor(t time.Time) int {
	if t.Month() >= time.October {
		return t.Year()
	}
	return t.Year() - 1
}

// BuildStats reads rosters.json from outDir, pulls season averages (current
// season, falling back to the previous one per player), optionally layers
// trailing-game averages from game logs, and writes player_stats.json keyed
// by player name. season == 0 auto-detects.
func BuildStats(ctx context.Context, client *bdl.Client, outDir string, season int, withLogs bool, logger *slog.Logger) Result {
	var result Result

	roster, err := loadRoster(outDir)
	if err != nil {
		result.AddErrorf("load roster: %v", err)
		return result
	}
	if season == 0 {
		season = SeasonFor(time.Now())
	}
	logger.Info("building player stats", "season", season, "roster", len(roster), "with_logs", withLogs)

	ids := make([]int, 0, len(roster))
	for _, p := range roster {
		if p.ID != 0 {
			ids = append(ids, p.ID)
		}
	}

	averages, err := client.SeasonAverages(ctx, season, ids)
	if err != nil {
		result.AddErrorf("season averages: %v", err)
		return result
	}

	// Early-season rosters have players with no current rows yet; carry the
	// previous season forward for them.
	var missing []int
	for _, id := range ids {
		if _, ok := averages[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		previous, err := client.SeasonAverages(ctx, season-1, missing)
		if err != nil {
			result.AddErrorf("previous season averages: %v", err)
		} else {
			for id, row := range previous {
				averages[id] = row
			}
			logger.Info("previous season backfill", "players", len(previous))
		}
	}

	recent := map[int]map[string]float64{}
	if withLogs {
		logs, err := client.GameLogs(ctx, season, ids)
		if err != nil {
			result.AddErrorf("game logs: %v", err)
		} else {
			recent = trailingAverages(logs)
			logger.Info("trailing averages computed", "players", len(recent), "rows", len(logs))
		}
	}

	out := make(map[string]statsRow, len(roster))
	for _, p := range roster {
		avg, ok := averages[p.ID]
		if !ok {
			continue
		}
		row := statsRow{
			ID:     p.ID,
			Team:   p.Team,
			Season: avg.Season,
			Games:  avg.GamesPlayed,
			Min:    parseMinutes(avg.Min),
			Pts:    avg.Pts,
			Reb:    avg.Reb,
			Ast:    avg.Ast,
			Stl:    avg.Stl,
			Blk:    avg.Blk,
			Tov:    avg.Turnover,
		}
		if r, ok := recent[p.ID]; ok {
			row.L5Pts = floatPtr(r["pts"])
			row.L5Reb = floatPtr(r["reb"])
			row.L5Ast = floatPtr(r["ast"])
			row.L5Stl = floatPtr(r["stl"])
			row.L5Blk = floatPtr(r["blk"])
			row.L5Tov = floatPtr(r["tov"])
		}
		out[p.Name] = row
	}

	if err := writeJSON(outDir, StatsFile, out); err != nil {
		result.AddErrorf("write %s: %v", StatsFile, err)
		return result
	}

	result.PlayersWritten = len(out)
	result.FilesWritten = 1
	logger.Info("player stats written", "file", StatsFile, "players", len(out))
	return result
}

// loadRoster reads the flat roster list the rosters builder produced.
func loadRoster(dir string) ([]rosterRow, error) {
	data, err := os.ReadFile(filepath.Join(dir, RostersFile))
	if err != nil {
		return nil, err
	}
	var roster []rosterRow
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("decode %s: %w", RostersFile, err)
	}
	return roster, nil
}

// trailingAverages computes per-player means over each player's most recent
// games.
func trailingAverages(logs []bdl.GameStat) map[int]map[string]float64 {
	byPlayer := map[int][]bdl.GameStat{}
	for _, row := range logs {
		id := row.Player.ID
		byPlayer[id] = append(byPlayer[id], row)
	}

	out := make(map[int]map[string]float64, len(byPlayer))
	for id, rows := range byPlayer {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Game.Date > rows[j].Game.Date
		})
		if len(rows) > recentWindow {
			rows = rows[:recentWindow]
		}

		sums := map[string]float64{}
		for _, r := range rows {
			sums["pts"] += r.Pts
			sums["reb"] += r.Reb
			sums["ast"] += r.Ast
			sums["stl"] += r.Stl
			sums["blk"] += r.Blk
			sums["tov"] += r.Turnover
		}
		n := float64(len(rows))
		for k := range sums {
			sums[k] /= n
		}
		out[id] = sums
	}
	return out
}

// parseMinutes converts BDL's "MM:SS" (or plain numeric) minutes string.
func parseMinutes(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if mins, secs, ok := strings.Cut(s, ":"); ok {
		m, err1 := strconv.ParseFloat(mins, 64)
		sec, err2 := strconv.ParseFloat(secs, 64)
		if err1 != nil || err2 != nil {
			return 0
		}
		return m + sec/60.0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

func floatPtr(v float64) *float64 { return &v }
