package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrendingRanksByRecentAverage(t *testing.T) {
	var records []PlayerStatRecord
	// Cooling off hard, but still the highest recent average.
	records = append(records, gameLogRecords("Volume Scorer", "DAL",
		28, 27, 26, 25, 24, 40, 40, 40, 40)...)
	records = append(records, gameLogRecords("Role Player", "ORL",
		14, 13, 12, 11, 10, 10, 10, 10, 10)...)

	results, total := ComputeTrending(records, RosterIndex{}, Params{})
	assert.Equal(t, 2, total)
	require.Len(t, results, 2)

	assert.Equal(t, "Volume Scorer", results[0].Name)
	assert.InDelta(t, 26.0, results[0].Avg, 1e-9, "no baseline comparison, negative form still ranks")
	assert.Equal(t, "Role Player", results[1].Name)
	assert.InDelta(t, 12.0, results[1].Avg, 1e-9)
	assert.GreaterOrEqual(t, results[0].Avg, results[1].Avg)
}

func TestComputeTrendingCarriesRecentSamples(t *testing.T) {
	records := gameLogRecords("Sampler", "PHI", 30, 28, 25, 20, 18, 17, 16, 15, 14)
	results, _ := ComputeTrending(records, RosterIndex{}, Params{LastN: 3})
	require.Len(t, results, 1)

	samples := results[0].RecentSamples
	require.Len(t, samples, 3)
	assert.Equal(t, 30.0, samples[0].Value)
	assert.Equal(t, 28.0, samples[1].Value)
	assert.Equal(t, 25.0, samples[2].Value)
	for i := 1; i < len(samples); i++ {
		assert.GreaterOrEqual(t, samples[i-1].Date, samples[i].Date, "samples stay date-descending")
	}
}

func TestComputeTrendingMinGamesGate(t *testing.T) {
	records := gameLogRecords("Thin", "UTA", 30, 28, 25)
	results, total := ComputeTrending(records, RosterIndex{}, Params{})
	assert.Empty(t, results)
	assert.Equal(t, 1, total)
}

func TestComputeTrendingAggregateShape(t *testing.T) {
	records := Normalize([]byte(`{
		"Jane Doe": {"team": "GSW", "pts": 20, "l5_pts": 18, "games": 10},
		"Bench Guy": {"team": "GSW", "pts": 4, "l5_pts": 3, "games": 5}
	}`))

	results, total := ComputeTrending(records, RosterIndex{}, Params{})
	assert.Equal(t, 2, total)
	require.Len(t, results, 1, "aggregate gating uses reported game count")

	r := results[0]
	assert.Equal(t, "Jane Doe", r.Name)
	assert.Equal(t, 18.0, r.Avg, "negative-delta players still trend")
	assert.Empty(t, r.RecentSamples)
	assert.NotNil(t, r.RecentSamples, "samples serialize as [] not null")
}

func TestComputeTrendingTieBreak(t *testing.T) {
	var records []PlayerStatRecord
	records = append(records, gameLogRecords("Bravo", "CHI", 20, 20, 20, 20, 20, 20, 20, 20)...)
	records = append(records, gameLogRecords("Alpha", "CLE", 20, 20, 20, 20, 20, 20, 20, 20)...)

	results, _ := ComputeTrending(records, RosterIndex{}, Params{})
	require.Len(t, results, 2)
	assert.Equal(t, "Alpha", results[0].Name)
	assert.Equal(t, "Bravo", results[1].Name)
}
