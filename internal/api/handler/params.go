package handler

import (
	"net/http"
	"strconv"

	"github.com/dblair1027/prop-engine-api/internal/stats"
)

// queryParams reads the shared edge/trend query parameters. Out-of-range
// and unparseable values are clamped or defaulted by Params.Normalize —
// these queries never reject on parameter noise.
func queryParams(r *http.Request) stats.Params {
	q := r.URL.Query()
	return stats.Params{
		Stat:     q.Get("stat"),
		LastN:    intParam(q.Get("last_n")),
		MinGames: intParam(q.Get("min_games")),
		Limit:    intParam(q.Get("limit")),
		Team:     q.Get("team"),
		Position: q.Get("position"),
	}.Normalize()
}

func intParam(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
