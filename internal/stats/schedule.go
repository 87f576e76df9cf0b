package stats

import (
	"encoding/json"
	"sort"
	"strings"
)

// Game is one master-schedule entry.
type Game struct {
	GameID    string `json:"game_id"`
	GameDate  string `json:"game_date"`
	TimeET    string `json:"time_et,omitempty"`
	HomeTeam  string `json:"home_team_abbr"`
	AwayTeam  string `json:"away_team_abbr"`
	Status    string `json:"status,omitempty"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
}

// ParseSchedule decodes a master-schedule payload, dropping rows without a
// valid game date. Malformed payloads yield an empty slice.
func ParseSchedule(raw []byte) []Game {
	var games []Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil
	}
	out := games[:0]
	for _, g := range games {
		g.GameDate = truncateDate(g.GameDate)
		if g.GameDate == "" {
			continue
		}
		g.HomeTeam = strings.ToUpper(g.HomeTeam)
		g.AwayTeam = strings.ToUpper(g.AwayTeam)
		out = append(out, g)
	}
	return out
}

// FilterGames returns games within [start, end] (inclusive, either bound
// optional) involving team when set, ordered by date then game id. Dates
// compare lexically, which is exact for YYYY-MM-DD.
func FilterGames(games []Game, start, end, team string) []Game {
	team = strings.ToUpper(strings.TrimSpace(team))
	out := make([]Game, 0, len(games))
	for _, g := range games {
		if start != "" && g.GameDate < start {
			continue
		}
		if end != "" && g.GameDate > end {
			continue
		}
		if team != "" && g.HomeTeam != team && g.AwayTeam != team {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GameDate != out[j].GameDate {
			return out[i].GameDate < out[j].GameDate
		}
		return out[i].GameID < out[j].GameID
	})
	return out
}
