package stats

import (
	"sort"
	"strings"
)

// Parameter clamps shared by the edge and trend queries.
const (
	minLastN    = 2
	maxLastN    = 20
	maxMinGames = 82
	minLimit    = 1
	maxLimit    = 200

	defaultLastN    = 5
	defaultMinGames = 8
	defaultLimit    = 50

	// Aggregate sources carry a precomputed fixed-window rollup; the window
	// is not adjustable by last_n.
	aggregateRecentWindow = 5
)

// Params are the filter/rank inputs for edge and trend queries. Zero values
// mean "use defaults". Call Normalize before computing; handlers echo the
// normalized values back in the response meta.
type Params struct {
	Stat     string
	LastN    int
	MinGames int
	Limit    int
	Team     string
	Position string
}

// Normalize applies defaults and clamps: stat falls back to pts, last_n to
// [2,20], min_games to [last_n+1, 82] defaulting to max(8, last_n+1), limit
// to [1,200]. Team and position filters are upper-cased.
func (p Params) Normalize() Params {
	p.Stat = CanonicalStat(p.Stat)

	if p.LastN == 0 {
		p.LastN = defaultLastN
	}
	p.LastN = clampInt(p.LastN, minLastN, maxLastN)

	if p.MinGames == 0 {
		p.MinGames = defaultMinGames
		if p.LastN+1 > p.MinGames {
			p.MinGames = p.LastN + 1
		}
	}
	p.MinGames = clampInt(p.MinGames, p.LastN+1, maxMinGames)

	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	p.Limit = clampInt(p.Limit, minLimit, maxLimit)

	p.Team = strings.ToUpper(strings.TrimSpace(p.Team))
	p.Position = strings.ToUpper(strings.TrimSpace(p.Position))
	return p
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EdgeResult is one player whose recent-form average for the requested stat
// exceeds their season baseline. Delta is exactly RecentAvg - SeasonAvg.
type EdgeResult struct {
	PlayerID         string  `json:"playerId,omitempty"`
	Name             string  `json:"name"`
	Team             string  `json:"team"`
	Position         string  `json:"position,omitempty"`
	Stat             string  `json:"stat"`
	RecentAvg        float64 `json:"recentAvg"`
	SeasonAvg        float64 `json:"seasonAvg"`
	Delta            float64 `json:"delta"`
	RecentSampleSize int     `json:"recentSampleSize"`
	SeasonSampleSize int     `json:"seasonSampleSize"`
}

// Sample is one dated stat value from a player's game log.
type Sample struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// playerSeries is the per-player view the rankers operate on after grouping
// canonical records: either a dated per-game series, or a single aggregate
// record (aggregate == true, series empty).
type playerSeries struct {
	id        string
	name      string
	team      string
	aggregate bool
	samples   []Sample            // per-game values of one stat, all valid
	fields    map[string]*float64 // aggregate record's stat map
}

// groupByPlayer folds canonical records into per-player series for the
// requested stat. Records with a game date contribute samples; aggregate
// records (no date) carry their stat map through whole.
func groupByPlayer(records []PlayerStatRecord, stat string) []playerSeries {
	order := make([]string, 0, len(records))
	byKey := make(map[string]*playerSeries, len(records))

	for _, rec := range records {
		key := rec.PlayerID
		if key == "" {
			key = "name:" + normalizeName(rec.Name)
		}
		series, ok := byKey[key]
		if !ok {
			series = &playerSeries{id: rec.PlayerID, name: rec.Name, team: rec.Team}
			byKey[key] = series
			order = append(order, key)
		}
		if series.team == "" && rec.Team != "" {
			series.team = rec.Team
		}

		if rec.GameDate == "" {
			series.aggregate = true
			series.fields = rec.Stats
			continue
		}
		if v := rec.Stats[stat]; v != nil {
			series.samples = append(series.samples, Sample{Date: rec.GameDate, Value: *v})
		}
	}

	out := make([]playerSeries, 0, len(order))
	for _, key := range order {
		s := byKey[key]
		// Most recent first; stable ordering for equal dates.
		sort.SliceStable(s.samples, func(i, j int) bool {
			return s.samples[i].Date > s.samples[j].Date
		})
		out = append(out, *s)
	}
	return out
}

// ComputeEdges derives the ranked edge-candidate view: players whose recent
// average for p.Stat exceeds their season baseline, roster-filtered, sorted
// by delta descending (name ascending on ties) and capped at p.Limit.
// The returned total is the number of players considered before filtering.
func ComputeEdges(records []PlayerStatRecord, roster RosterIndex, p Params) (results []EdgeResult, total int) {
	p = p.Normalize()
	players := groupByPlayer(records, p.Stat)
	total = len(players)

	results = make([]EdgeResult, 0, len(players))
	for _, player := range players {
		res, ok := edgeFor(player, p)
		if !ok {
			continue
		}
		pos, joined := applyRosterJoin(&res.Team, player, roster, p)
		if !joined {
			continue
		}
		res.Position = pos
		results = append(results, res)
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Delta != results[j].Delta {
			return results[i].Delta > results[j].Delta
		}
		return results[i].Name < results[j].Name
	})
	if len(results) > p.Limit {
		results = results[:p.Limit]
	}
	return results, total
}

func edgeFor(player playerSeries, p Params) (EdgeResult, bool) {
	res := EdgeResult{
		PlayerID: player.id,
		Name:     player.name,
		Team:     player.team,
		Stat:     p.Stat,
	}

	if player.aggregate && len(player.samples) == 0 {
		season := player.fields[p.Stat]
		recent := player.fields["l5_"+p.Stat]
		games := player.fields["games"]
		if season == nil || recent == nil || games == nil {
			return res, false
		}
		if int(*games) < p.MinGames {
			return res, false
		}
		res.RecentAvg = *recent
		res.SeasonAvg = *season
		res.RecentSampleSize = aggregateRecentWindow
		res.SeasonSampleSize = int(*games)
	} else {
		if len(player.samples) < p.MinGames {
			return res, false
		}
		recent := player.samples
		if len(recent) > p.LastN {
			recent = recent[:p.LastN]
		}
		res.RecentAvg = meanSamples(recent)
		res.SeasonAvg = meanSamples(player.samples)
		res.RecentSampleSize = len(recent)
		res.SeasonSampleSize = len(player.samples)
	}

	res.Delta = res.RecentAvg - res.SeasonAvg
	if res.Delta <= 0 {
		return res, false
	}
	return res, true
}

// applyRosterJoin resolves a player's team/position from the roster index
// and enforces the team/position filters. Filters match roster values only;
// a player absent from the index fails any active filter.
func applyRosterJoin(team *string, player playerSeries, roster RosterIndex, p Params) (position string, ok bool) {
	tp, found := roster.Lookup(player.id, player.name)
	if found {
		position = tp.Position
		if *team == "" {
			*team = tp.Team
		}
	}
	if p.Team != "" {
		if !found || !strings.EqualFold(tp.Team, p.Team) {
			return "", false
		}
	}
	if p.Position != "" {
		if !found || !strings.Contains(strings.ToUpper(tp.Position), p.Position) {
			return "", false
		}
	}
	return position, true
}

func meanSamples(samples []Sample) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s.Value
	}
	return sum / float64(len(samples))
}
