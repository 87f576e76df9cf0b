package ingest

import (
	"context"
	"log/slog"

	"github.com/dblair1027/prop-engine-api/internal/provider/nba"
)

// ScheduleFile is the published master schedule payload name.
const ScheduleFile = "schedule_master.json"

// BuildSchedule pulls the full-season schedule feed and writes
// schedule_master.json.
func BuildSchedule(ctx context.Context, client *nba.Client, outDir string, logger *slog.Logger) Result {
	var result Result

	games, err := client.MasterSchedule(ctx)
	if err != nil {
		result.AddErrorf("fetch master schedule: %v", err)
		return result
	}

	if err := writeJSON(outDir, ScheduleFile, games); err != nil {
		result.AddErrorf("write %s: %v", ScheduleFile, err)
		return result
	}

	result.GamesWritten = len(games)
	result.FilesWritten = 1
	logger.Info("master schedule written", "file", ScheduleFile, "games", len(games))
	return result
}
