package bdl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// averagesBatchSize keeps the player_ids[] query under BDL's URL length cap.
const averagesBatchSize = 75

// SeasonAverage is one row from /season_averages.
type SeasonAverage struct {
	PlayerID    int     `json:"player_id"`
	Season      int     `json:"season"`
	GamesPlayed int     `json:"games_played"`
	Min         string  `json:"min"`
	Pts         float64 `json:"pts"`
	Reb         float64 `json:"reb"`
	Ast         float64 `json:"ast"`
	Stl         float64 `json:"stl"`
	Blk         float64 `json:"blk"`
	Turnover    float64 `json:"turnover"`
	FGPct       float64 `json:"fg_pct"`
	FG3Pct      float64 `json:"fg3_pct"`
	FTPct       float64 `json:"ft_pct"`
}

// SeasonAverages fetches per-season averages for the given players, batching
// the IDs. Players with no rows for the season are simply absent from the
// returned map.
func (c *Client) SeasonAverages(ctx context.Context, season int, playerIDs []int) (map[int]SeasonAverage, error) {
	averages := make(map[int]SeasonAverage, len(playerIDs))

	for start := 0; start < len(playerIDs); start += averagesBatchSize {
		end := start + averagesBatchSize
		if end > len(playerIDs) {
			end = len(playerIDs)
		}

		params := url.Values{}
		params.Set("season", strconv.Itoa(season))
		for _, id := range playerIDs[start:end] {
			params.Add("player_ids[]", strconv.Itoa(id))
		}

		var page struct {
			Data []SeasonAverage `json:"data"`
		}
		if err := c.getJSON(ctx, "/season_averages", params, &page); err != nil {
			return nil, fmt.Errorf("fetch season averages (season %d): %w", season, err)
		}

		for _, row := range page.Data {
			averages[row.PlayerID] = row
		}
		c.logger.Debug("season averages batch fetched",
			"season", season, "batch", end-start, "total", len(averages))
	}

	return averages, nil
}
