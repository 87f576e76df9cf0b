package bdl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// GameStat is one player-game row from /stats.
type GameStat struct {
	Min      string  `json:"min"`
	Pts      float64 `json:"pts"`
	Reb      float64 `json:"reb"`
	Ast      float64 `json:"ast"`
	Stl      float64 `json:"stl"`
	Blk      float64 `json:"blk"`
	Turnover float64 `json:"turnover"`
	Player   struct {
		ID        int    `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"player"`
	Team struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
	Game struct {
		ID   int    `json:"id"`
		Date string `json:"date"`
	} `json:"game"`
}

// GameLogs walks the /stats cursor for a season and set of players. IDs are
// batched like season averages; each batch pages until its cursor runs out.
func (c *Client) GameLogs(ctx context.Context, season int, playerIDs []int) ([]GameStat, error) {
	var logs []GameStat

	for start := 0; start < len(playerIDs); start += averagesBatchSize {
		end := start + averagesBatchSize
		if end > len(playerIDs) {
			end = len(playerIDs)
		}

		var cursor *int
		for {
			params := url.Values{}
			params.Set("per_page", "100")
			params.Add("seasons[]", strconv.Itoa(season))
			for _, id := range playerIDs[start:end] {
				params.Add("player_ids[]", strconv.Itoa(id))
			}
			if cursor != nil {
				params.Set("cursor", strconv.Itoa(*cursor))
			}

			var page struct {
				Data []GameStat `json:"data"`
				Meta pageMeta   `json:"meta"`
			}
			if err := c.getJSON(ctx, "/stats", params, &page); err != nil {
				return nil, fmt.Errorf("fetch game logs (season %d): %w", season, err)
			}

			logs = append(logs, page.Data...)
			if page.Meta.NextCursor == nil {
				break
			}
			cursor = page.Meta.NextCursor
		}
		c.logger.Debug("game log batch fetched", "season", season, "total", len(logs))
	}

	return logs, nil
}
