// Command ingest builds the published JSON payloads the API serves.
//
// Usage:
//
//	prop-ingest rosters
//	prop-ingest stats --season 2025 --with-logs
//	prop-ingest schedule
//	prop-ingest all --out data
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dblair1027/prop-engine-api/internal/config"
	"github.com/dblair1027/prop-engine-api/internal/ingest"
	"github.com/dblair1027/prop-engine-api/internal/provider/bdl"
	"github.com/dblair1027/prop-engine-api/internal/provider/nba"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

// outDir is shared by every subcommand; empty falls back to config.
var outDir string

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "prop-ingest",
		Short: "Prop engine payload builder CLI",
	}
	root.PersistentFlags().StringVar(&outDir, "out", "", "Output directory (default from INGEST_OUTPUT_DIR)")

	root.AddCommand(rostersCmd())
	root.AddCommand(statsCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(allCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func rostersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rosters",
		Short: "Build rosters.json from the BallDontLie active player list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config) ingest.Result {
				client, err := bdlClient(cfg)
				if err != nil {
					var r ingest.Result
					r.AddErrorf("%v", err)
					return r
				}
				return ingest.BuildRosters(ctx, client, resolveOut(cfg), logger)
			})
		},
	}
}

func statsCmd() *cobra.Command {
	var season int
	var withLogs bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Build player_stats.json from season averages and game logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config) ingest.Result {
				client, err := bdlClient(cfg)
				if err != nil {
					var r ingest.Result
					r.AddErrorf("%v", err)
					return r
				}
				return ingest.BuildStats(ctx, client, resolveOut(cfg), season, withLogs, logger)
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year (0 = auto-detect)")
	cmd.Flags().BoolVar(&withLogs, "with-logs", true, "Compute trailing-game averages from game logs")
	return cmd
}

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Build schedule_master.json from the league schedule feed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config) ingest.Result {
				return ingest.BuildSchedule(ctx, nba.NewClient("", logger), resolveOut(cfg), logger)
			})
		},
	}
}

func allCmd() *cobra.Command {
	var season int
	var withLogs bool
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Build every payload: rosters, stats, schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(func(ctx context.Context, cfg *config.Config) ingest.Result {
				var result ingest.Result

				client, err := bdlClient(cfg)
				if err != nil {
					result.AddErrorf("%v", err)
					return result
				}
				out := resolveOut(cfg)

				// Rosters feed the stats builder, so order matters.
				result.Add(ingest.BuildRosters(ctx, client, out, logger))
				result.Add(ingest.BuildStats(ctx, client, out, season, withLogs, logger))
				result.Add(ingest.BuildSchedule(ctx, nba.NewClient("", logger), out, logger))
				return result
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Season year (0 = auto-detect)")
	cmd.Flags().BoolVar(&withLogs, "with-logs", true, "Compute trailing-game averages from game logs")
	return cmd
}

// bdlClient builds the BDL client, requiring an API key.
func bdlClient(cfg *config.Config) (*bdl.Client, error) {
	if cfg.BDLAPIKey == "" {
		return nil, fmt.Errorf("BDL_API_KEY is required")
	}
	return bdl.NewClient("", cfg.BDLAPIKey, cfg.SourceRequests, logger), nil
}

// resolveOut prefers the --out flag over the configured output directory.
func resolveOut(cfg *config.Config) string {
	if outDir != "" {
		return outDir
	}
	return cfg.OutputDir
}

// runIngest handles config loading, context cancellation, and result logging.
func runIngest(fn func(ctx context.Context, cfg *config.Config) ingest.Result) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	start := time.Now()
	result := fn(ctx, cfg)
	logger.Info("Ingest finished",
		"duration", time.Since(start).Round(time.Second),
		"summary", result.Summary())
	for _, e := range result.Errors {
		logger.Error("ingest error", "error", e)
	}
	if len(result.Errors) > 0 && result.FilesWritten == 0 {
		return fmt.Errorf("ingest failed: %s", result.Errors[0])
	}
	return nil
}
