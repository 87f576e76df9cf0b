// Package nba fetches the league's static schedule feed. The feed needs no
// auth and is published as one large JSON document for the whole season.
package nba

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// DefaultScheduleURL is the static full-season schedule document.
const DefaultScheduleURL = "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2.json"

// Game is one master-schedule row. Synthetic game IDs are derived from the
// date so downstream consumers never depend on league numbering.
type Game struct {
	GameID       string `json:"game_id"`
	GameDate     string `json:"game_date"`
	TimeET       string `json:"time_et"`
	HomeTeamAbbr string `json:"home_team_abbr"`
	AwayTeamAbbr string `json:"away_team_abbr"`
	NBAGameID    string `json:"nba_game_id"`
	Status       string `json:"status"`
	HomeScore    *int   `json:"home_score"`
	AwayScore    *int   `json:"away_score"`
}

// Client fetches the schedule feed.
type Client struct {
	httpClient *http.Client
	url        string
	logger     *slog.Logger
}

// NewClient creates a schedule client. An empty url selects the CDN feed.
func NewClient(url string, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultScheduleURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		url:        url,
		logger:     logger,
	}
}

// feed mirrors the slice of scheduleLeagueV2 the builder reads.
type feed struct {
	LeagueSchedule struct {
		GameDates []struct {
			GameDate    string `json:"gameDate"`
			GameDateEst string `json:"gameDateEst"`
			Games       []struct {
				GameID         string `json:"gameId"`
				GameTimeET     string `json:"gameTimeET"`
				GameStatusText string `json:"gameStatusText"`
				HomeTeam       struct {
					TeamTricode string `json:"teamTricode"`
				} `json:"homeTeam"`
				AwayTeam struct {
					TeamTricode string `json:"teamTricode"`
				} `json:"awayTeam"`
			} `json:"games"`
		} `json:"gameDates"`
	} `json:"leagueSchedule"`
}

// MasterSchedule fetches and flattens the feed into master-schedule rows.
func (c *Client) MasterSchedule(ctx context.Context) ([]Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch schedule feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("schedule feed returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read schedule feed: %w", err)
	}

	var f feed
	if err := json.Unmarshal(body, &f); err != nil {
		return nil, fmt.Errorf("decode schedule feed: %w", err)
	}

	var games []Game
	for _, gd := range f.LeagueSchedule.GameDates {
		date := normalizeDate(gd.GameDate, gd.GameDateEst)
		if date == "" {
			continue
		}

		for i, g := range gd.Games {
			status := g.GameStatusText
			if status == "" {
				status = "Scheduled"
			}
			timeET := g.GameTimeET
			if timeET == "" {
				timeET = "TBD"
			}
			games = append(games, Game{
				GameID:       internalGameID(date, i+1),
				GameDate:     date,
				TimeET:       timeET,
				HomeTeamAbbr: g.HomeTeam.TeamTricode,
				AwayTeamAbbr: g.AwayTeam.TeamTricode,
				NBAGameID:    g.GameID,
				Status:       status,
			})
		}
	}

	c.logger.Info("schedule feed flattened", "games", len(games))
	return games, nil
}

// internalGameID builds the synthetic g_YYYYMMDD_NNN identifier.
func internalGameID(date string, indexForDay int) string {
	return fmt.Sprintf("g_%s_%03d", strings.ReplaceAll(date, "-", ""), indexForDay)
}

// normalizeDate prefers the EST timestamp prefix; the feed's plain gameDate
// arrives as "MM/DD/YYYY hh:mm:ss".
func normalizeDate(gameDate, gameDateEst string) string {
	if len(gameDateEst) >= 10 {
		return gameDateEst[:10]
	}
	fields := strings.Fields(gameDate)
	if len(fields) == 0 {
		return ""
	}
	t, err := time.Parse("01/02/2006", fields[0])
	if err != nil {
		return ""
	}
	return t.Format("2006-01-02")
}
