package bdl

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Player is an entry from /players/active.
type Player struct {
	ID           int    `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Height       string `json:"height"`
	Weight       string `json:"weight"`
	JerseyNumber string `json:"jersey_number"`
	Team         struct {
		Abbreviation string `json:"abbreviation"`
	} `json:"team"`
}

// FullName joins first and last names, tolerating a missing half.
func (p Player) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// ActivePlayers walks the /players/active cursor until exhausted.
func (c *Client) ActivePlayers(ctx context.Context) ([]Player, error) {
	var (
		players []Player
		cursor  *int
	)

	for {
		params := url.Values{}
		params.Set("per_page", "100")
		if cursor != nil {
			params.Set("cursor", strconv.Itoa(*cursor))
		}

		var page struct {
			Data []Player `json:"data"`
			Meta pageMeta `json:"meta"`
		}
		if err := c.getJSON(ctx, "/players/active", params, &page); err != nil {
			return nil, fmt.Errorf("fetch active players: %w", err)
		}

		players = append(players, page.Data...)
		if page.Meta.NextCursor == nil {
			break
		}
		cursor = page.Meta.NextCursor
		c.logger.Debug("active players page fetched", "total", len(players), "cursor", *cursor)
	}

	return players, nil
}
