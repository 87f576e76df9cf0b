package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectShape(t *testing.T) {
	assert.Equal(t, ShapeGameLog, DetectShape([]byte(`[{"name":"A"}]`)))
	assert.Equal(t, ShapeAggregate, DetectShape([]byte(`{"Jane Doe":{"pts":20}}`)))
	assert.Equal(t, ShapeUnknown, DetectShape([]byte(`"just a string"`)))
	assert.Equal(t, ShapeUnknown, DetectShape([]byte(`42`)))
	assert.Equal(t, ShapeUnknown, DetectShape([]byte(`{invalid`)))
}

func TestNormalizeGameLogAliases(t *testing.T) {
	payload := []byte(`[
		{"PlayerID": 237, "Name": "LeBron James", "Team": "lal", "Date": "2026-01-15T00:00:00", "Points": 31, "Rebounds": 8, "Assists": 9},
		{"player": {"id": 15, "first_name": "Nikola", "last_name": "Jokic"}, "team": {"abbreviation": "den"}, "game_date": "2026-01-16", "pts": "28", "reb": 14}
	]`)

	records := Normalize(payload)
	require.Len(t, records, 2)

	lbj := records[0]
	assert.Equal(t, "237", lbj.PlayerID)
	assert.Equal(t, "LeBron James", lbj.Name)
	assert.Equal(t, "LAL", lbj.Team)
	assert.Equal(t, "2026-01-15", lbj.GameDate, "date truncates to its YYYY-MM-DD prefix")
	require.NotNil(t, lbj.Stats["pts"])
	assert.Equal(t, 31.0, *lbj.Stats["pts"])
	require.NotNil(t, lbj.Stats["reb"])
	assert.Equal(t, 8.0, *lbj.Stats["reb"])

	jok := records[1]
	assert.Equal(t, "15", jok.PlayerID)
	assert.Equal(t, "Nikola Jokic", jok.Name)
	assert.Equal(t, "DEN", jok.Team)
	assert.Equal(t, "2026-01-16", jok.GameDate)
	require.NotNil(t, jok.Stats["pts"])
	assert.Equal(t, 28.0, *jok.Stats["pts"], "string stat values coerce")
}

func TestNormalizeDropsMalformedRows(t *testing.T) {
	payload := []byte(`[
		{"pts": 12},
		{"name": "Kept Player", "team": "BOS", "date": "2026-02-01", "pts": 22},
		null
	]`)

	records := Normalize(payload)
	require.Len(t, records, 1, "rows without identity are dropped silently")
	assert.Equal(t, "Kept Player", records[0].Name)
}

func TestNormalizeUnparseableStatIsNil(t *testing.T) {
	payload := []byte(`[{"name": "A", "team": "NYK", "date": "2026-01-01", "pts": "dnp", "reb": 5}]`)
	records := Normalize(payload)
	require.Len(t, records, 1)
	assert.Nil(t, records[0].Stats["pts"])
	require.NotNil(t, records[0].Stats["reb"])
}

func TestNormalizeInvalidDateOmitted(t *testing.T) {
	payload := []byte(`[{"name": "A", "team": "NYK", "date": "Jan 5 2026", "pts": 10}]`)
	records := Normalize(payload)
	require.Len(t, records, 1)
	assert.Empty(t, records[0].GameDate)
}

func TestNormalizeAggregateShape(t *testing.T) {
	payload := []byte(`{
		"Jane Doe": {"team": "gsw", "pts": 20, "l5_pts": 18, "games": 10, "usage": 24.5},
		"broken": "not an object"
	}`)

	records := Normalize(payload)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "GSW", rec.Team)
	assert.Empty(t, rec.GameDate)
	require.NotNil(t, rec.Stats["l5_pts"])
	assert.Equal(t, 18.0, *rec.Stats["l5_pts"])
	require.NotNil(t, rec.Stats["games"])
	assert.Equal(t, 10.0, *rec.Stats["games"])
}

// Scenario: a bare string payload matches neither shape and must yield an
// empty record sequence, never an error.
func TestNormalizeUnrecognizedPayload(t *testing.T) {
	assert.Empty(t, Normalize([]byte(`"oops"`)))
	assert.Empty(t, Normalize([]byte(``)))
	assert.Empty(t, Normalize([]byte(`12.5`)))
}

func TestNormalizeIdempotent(t *testing.T) {
	payload := []byte(`[
		{"name": "A", "team": "BOS", "date": "2026-02-01", "pts": 22, "ast": 4},
		{"name": "B", "team": "MIA", "date": "2026-02-01", "pts": 17}
	]`)
	assert.Equal(t, Normalize(payload), Normalize(payload))
}

func TestCanonicalStat(t *testing.T) {
	assert.Equal(t, "pts", CanonicalStat("points"))
	assert.Equal(t, "reb", CanonicalStat("REBOUNDS"))
	assert.Equal(t, "ast", CanonicalStat("ast"))
	assert.Equal(t, "pts", CanonicalStat("made_up_stat"), "unrecognized falls back to pts")
	assert.Equal(t, "pts", CanonicalStat(""))
}

func TestCoerceNumber(t *testing.T) {
	n, ok := CoerceNumber(map[string]interface{}{"total": 15.0})
	assert.True(t, ok)
	assert.Equal(t, 15.0, n)

	_, ok = CoerceNumber(nil)
	assert.False(t, ok)
	_, ok = CoerceNumber([]interface{}{1.0})
	assert.False(t, ok)
}

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-03-01"))
	assert.True(t, ValidDate("2026-03-01T19:30:00Z"))
	assert.False(t, ValidDate("03/01/2026"))
	assert.False(t, ValidDate("2026-3-1"))
	assert.False(t, ValidDate(""))
}
