package stats

import "sort"

// TrendResult is one player ranked purely by recent-form average, with the
// samples that produced the average carried along for display.
type TrendResult struct {
	PlayerID      string   `json:"playerId,omitempty"`
	Name          string   `json:"name"`
	Team          string   `json:"team"`
	Position      string   `json:"position,omitempty"`
	Stat          string   `json:"stat"`
	Avg           float64  `json:"avg"`
	RecentSamples []Sample `json:"recentSamples"`
}

// ComputeTrending derives the trending view: the mean of up to last_n most
// recent valid values of p.Stat per player, with no baseline comparison and
// no positivity requirement. Gating, filtering, sorting (avg descending,
// name ascending on ties) and the limit cap work exactly as in ComputeEdges.
func ComputeTrending(records []PlayerStatRecord, roster RosterIndex, p Params) (results []TrendResult, total int) {
	p = p.Normalize()
	players := groupByPlayer(records, p.Stat)
	total = len(players)

	results = make([]TrendResult, 0, len(players))
	for _, player := range players {
		res, ok := trendFor(player, p)
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
		if results[i].Avg != results[j].Avg {
			return results[i].Avg > results[j].Avg
		}
		return results[i].Name < results[j].Name
	})
	if len(results) > p.Limit {
		results = results[:p.Limit]
	}
	return results, total
}

func trendFor(player playerSeries, p Params) (TrendResult, bool) {
	res := TrendResult{
		PlayerID:      player.id,
		Name:          player.name,
		Team:          player.team,
		Stat:          p.Stat,
		RecentSamples: []Sample{},
	}

	if player.aggregate && len(player.samples) == 0 {
		recent := player.fields["l5_"+p.Stat]
		games := player.fields["games"]
		if recent == nil || games == nil || int(*games) < p.MinGames {
			return res, false
		}
		res.Avg = *recent
		return res, true
	}

	if len(player.samples) < p.MinGames {
		return res, false
	}
	recent := player.samples
	if len(recent) > p.LastN {
		recent = recent[:p.LastN]
	}
	res.Avg = meanSamples(recent)
	res.RecentSamples = append(res.RecentSamples, recent...)
	return res, true
}
