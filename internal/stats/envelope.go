package stats

// Filters echoes the roster-join filters a query ran with.
type Filters struct {
	Team     string `json:"team"`
	Position string `json:"position"`
}

// Meta describes how a ranked view was computed: players considered, count
// returned, the clamped parameters actually applied, and the payload source.
type Meta struct {
	TotalPlayers    int     `json:"totalPlayers"`
	EdgePlayers     *int    `json:"edgePlayers,omitempty"`
	TrendingPlayers *int    `json:"trendingPlayers,omitempty"`
	Stat            string  `json:"stat"`
	LastN           int     `json:"last_n"`
	MinGames        int     `json:"min_games"`
	Limit           int     `json:"limit"`
	Filters         Filters `json:"filters"`
	Source          string  `json:"source"`
}

// Envelope is the uniform result wrapper for ranked views.
type Envelope struct {
	Data interface{} `json:"data"`
	Meta Meta        `json:"meta"`
}

// NewEdgeEnvelope wraps computed edge results with their query metadata.
// Params must already be normalized so the echoed values are the clamped
// ones that actually applied.
func NewEdgeEnvelope(results []EdgeResult, total int, p Params, source string) Envelope {
	n := len(results)
	return Envelope{
		Data: results,
		Meta: Meta{
			TotalPlayers: total,
			EdgePlayers:  &n,
			Stat:         p.Stat,
			LastN:        p.LastN,
			MinGames:     p.MinGames,
			Limit:        p.Limit,
			Filters:      Filters{Team: p.Team, Position: p.Position},
			Source:       source,
		},
	}
}

// NewTrendEnvelope wraps computed trend results with their query metadata.
func NewTrendEnvelope(results []TrendResult, total int, p Params, source string) Envelope {
	n := len(results)
	return Envelope{
		Data: results,
		Meta: Meta{
			TotalPlayers:    total,
			TrendingPlayers: &n,
			Stat:            p.Stat,
			LastN:           p.LastN,
			MinGames:        p.MinGames,
			Limit:           p.Limit,
			Filters:         Filters{Team: p.Team, Position: p.Position},
			Source:          source,
		},
	}
}
