package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/dblair1027/prop-engine-api/internal/provider/bdl"
)

// RostersFile is the published roster payload name.
const RostersFile = "rosters.json"

// rosterRow is the published shape for one player.
type rosterRow struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Team      string `json:"team"`
	Pos       string `json:"pos"`
	Height    string `json:"height,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Jersey    string `json:"jersey,omitempty"`
}

// BuildRosters pulls the active player list and writes rosters.json sorted
// by team then name.
func BuildRosters(ctx context.Context, client *bdl.Client, outDir string, logger *slog.Logger) Result {
	var result Result

	players, err := client.ActivePlayers(ctx)
	if err != nil {
		result.AddErrorf("fetch active players: %v", err)
		return result
	}
	logger.Info("active players fetched", "count", len(players))

	rows := make([]rosterRow, 0, len(players))
	for _, p := range players {
		rows = append(rows, rosterRow{
			ID:        p.ID,
			Name:      p.FullName(),
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Team:      p.Team.Abbreviation,
			Pos:       p.Position,
			Height:    p.Height,
			Weight:    p.Weight,
			Jersey:    p.JerseyNumber,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Team != rows[j].Team {
			return rows[i].Team < rows[j].Team
		}
		return rows[i].Name < rows[j].Name
	})

	if err := writeJSON(outDir, RostersFile, rows); err != nil {
		result.AddErrorf("write %s: %v", RostersFile, err)
		return result
	}

	result.PlayersWritten = len(rows)
	result.FilesWritten = 1
	logger.Info("rosters written", "file", RostersFile, "players", len(rows))
	return result
}

// writeJSON writes v as indented JSON under dir, creating dir if needed.
func writeJSON(dir, name string, v any) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}
