package stats

import (
	"math"
	"strings"
)

// Tier is the discrete confidence bucket derived from the numeric score.
type Tier string

const (
	TierRed    Tier = "RED"
	TierYellow Tier = "YELLOW"
	TierGreen  Tier = "GREEN"
)

// Snapshot is one player's raw stat context as embedded in the aggregate
// payload: season scoring, role, matchup, trend, rest and opponent momentum.
// Nil fields mean the upstream never supplied the value.
type Snapshot struct {
	SeasonPts    *float64  `json:"pts"`
	Minutes      *float64  `json:"min"`
	Usage        *float64  `json:"usage"`
	DefRank      *float64  `json:"def_rank"`
	RecentPoints []float64 `json:"recent_points,omitempty"`
	Last5Pts     *float64  `json:"l5_pts,omitempty"`
	BackToBack   bool      `json:"back_to_back"`
	OppStreak    string    `json:"opp_streak,omitempty"`
}

// Weights is the configurable tunable table for the confidence heuristic.
// The repository history grew several slightly divergent copies of this
// formula; every recognized knob lives here so variants are configuration,
// not forked code. Scores are on the 0-100 scale.
type Weights struct {
	Base float64

	UsageWeight float64 // contribution = usage * UsageWeight, clamped below
	UsageFloor  float64
	UsageCeil   float64

	HighMinutes      float64
	HighMinutesBonus float64
	MidMinutes       float64
	MidMinutesBonus  float64
	LowMinutesDelta  float64 // applied when below MidMinutes

	ToughDefRank  float64 // opponent def rank at or under this is a tough draw
	ToughDefDelta float64
	SoftDefRank   float64 // at or over this is a soft draw
	SoftDefDelta  float64

	HotTrend       float64 // last5 - season thresholds
	HotTrendBonus  float64
	WarmTrend      float64
	WarmTrendBonus float64
	ColdTrend      float64
	ColdTrendDelta float64

	RoleMinutes float64 // both must hold for the role-volume bonus
	RoleUsage   float64
	RoleBonus   float64

	StreakSwing float64 // +swing on opponent losing streak, -swing on winning

	BackToBackDelta float64 // applied when the snapshot flags a back-to-back

	InsufficientScore float64 // placeholder when season points are missing

	GreenAt  float64
	YellowAt float64
}

// DefaultWeights returns the canonical tunables.
func DefaultWeights() Weights {
	return Weights{
		Base: 50,

		UsageWeight: 0.6,
		UsageFloor:  -10,
		UsageCeil:   15,

		HighMinutes:      34,
		HighMinutesBonus: 15,
		MidMinutes:       28,
		MidMinutesBonus:  8,
		LowMinutesDelta:  -4,

		ToughDefRank:  8,
		ToughDefDelta: -8,
		SoftDefRank:   22,
		SoftDefDelta:  6,

		HotTrend:       3,
		HotTrendBonus:  15,
		WarmTrend:      1.5,
		WarmTrendBonus: 8,
		ColdTrend:      -3,
		ColdTrendDelta: -12,

		RoleMinutes: 32,
		RoleUsage:   24,
		RoleBonus:   10,

		StreakSwing: 3,

		BackToBackDelta: 0,

		InsufficientScore: 25,

		GreenAt:  75,
		YellowAt: 55,
	}
}

// ConfidenceResult pairs a player's snapshot with its score and tier.
type ConfidenceResult struct {
	PlayerID string   `json:"playerId,omitempty"`
	Name     string   `json:"name"`
	Snapshot Snapshot `json:"snapshot"`
	Score    float64  `json:"score"`
	Tier     Tier     `json:"tier"`
}

// ScoreSnapshot maps a raw snapshot to a 0-100 confidence score and its
// tier. Deterministic for identical inputs; it is a heuristic, not a model.
// A snapshot with no season points yields the fixed insufficient-data
// placeholder rather than a fabricated assessment.
func ScoreSnapshot(s Snapshot, w Weights) (float64, Tier) {
	if s.SeasonPts == nil {
		score := clampFloat(w.InsufficientScore, 0, 100)
		return score, w.TierFor(score)
	}

	score := w.Base

	if s.Usage != nil {
		score += clampFloat(*s.Usage*w.UsageWeight, w.UsageFloor, w.UsageCeil)
	}

	if s.Minutes != nil {
		switch {
		case *s.Minutes >= w.HighMinutes:
			score += w.HighMinutesBonus
		case *s.Minutes >= w.MidMinutes:
			score += w.MidMinutesBonus
		default:
			score += w.LowMinutesDelta
		}
	}

	if s.DefRank != nil {
		switch {
		case *s.DefRank <= w.ToughDefRank:
			score += w.ToughDefDelta
		case *s.DefRank >= w.SoftDefRank:
			score += w.SoftDefDelta
		}
	}

	if last5, ok := s.last5(); ok {
		trendDelta := last5 - *s.SeasonPts
		switch {
		case trendDelta > w.HotTrend:
			score += w.HotTrendBonus
		case trendDelta > w.WarmTrend:
			score += w.WarmTrendBonus
		case trendDelta < w.ColdTrend:
			score += w.ColdTrendDelta
		}
	}

	if s.Minutes != nil && s.Usage != nil &&
		*s.Minutes >= w.RoleMinutes && *s.Usage >= w.RoleUsage {
		score += w.RoleBonus
	}

	switch streakDirection(s.OppStreak) {
	case 'L':
		score += w.StreakSwing
	case 'W':
		score -= w.StreakSwing
	}

	if s.BackToBack {
		score += w.BackToBackDelta
	}

	score = clampFloat(math.Round(score), 0, 100)
	return score, w.TierFor(score)
}

// TierFor is a pure function of the score.
func (w Weights) TierFor(score float64) Tier {
	switch {
	case score >= w.GreenAt:
		return TierGreen
	case score >= w.YellowAt:
		return TierYellow
	default:
		return TierRed
	}
}

// last5 resolves the recent scoring average: the mean of the trailing points
// series when present, else the precomputed last-5 rollup.
func (s Snapshot) last5() (float64, bool) {
	if len(s.RecentPoints) > 0 {
		var sum float64
		for _, v := range s.RecentPoints {
			sum += v
		}
		return sum / float64(len(s.RecentPoints)), true
	}
	if s.Last5Pts != nil {
		return *s.Last5Pts, true
	}
	return 0, false
}

// streakDirection parses opponent streak tokens like "W4" or "L3".
func streakDirection(token string) byte {
	t := strings.ToUpper(strings.TrimSpace(token))
	if t == "" {
		return 0
	}
	switch t[0] {
	case 'W', 'L':
		return t[0]
	default:
		return 0
	}
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
