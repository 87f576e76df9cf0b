// Package stats implements the derivation engine behind the prop dashboard:
// payload normalization across the inconsistent upstream schemas, the
// recent-form vs season-baseline edge computation, trend ranking, and the
// confidence heuristic. Every function here is a pure transformation over
// already-fetched payload bytes; fetching lives in internal/source.
package stats

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

// PayloadShape identifies which of the accepted raw stats layouts a payload
// uses. The upstream build scripts have produced both over time: a per-game
// log (array of game rows) and an aggregate snapshot (player name -> season
// averages with precomputed last-5 fields).
type PayloadShape int

const (
	ShapeUnknown PayloadShape = iota
	ShapeGameLog
	ShapeAggregate
)

// PlayerStatRecord is the canonical, schema-independent record the rankers
// consume. For aggregate sources GameDate is empty and Stats holds season
// and last-5 aggregates directly instead of a single game's values.
type PlayerStatRecord struct {
	PlayerID string
	Name     string
	Team     string
	GameDate string // YYYY-MM-DD, empty for aggregate records
	Stats    map[string]*float64
}

// StatKeys is the fixed set of rankable statistics, default first.
var StatKeys = []string{"pts", "reb", "ast", "stl", "blk", "tov"}

// statAliases maps each canonical stat key to the field names it may appear
// under in raw payloads. Keys are matched case-insensitively.
var statAliases = map[string][]string{
	"pts": {"pts", "points"},
	"reb": {"reb", "rebounds", "trb"},
	"ast": {"ast", "assists"},
	"stl": {"stl", "steals"},
	"blk": {"blk", "blocks", "blockedshots"},
	"tov": {"tov", "turnover", "turnovers"},
	"min": {"min", "minutes"},
}

// CanonicalStat maps a requested stat name onto the enumerated set, falling
// back to pts for anything unrecognized.
func CanonicalStat(stat string) string {
	s := strings.ToLower(strings.TrimSpace(stat))
	for _, k := range StatKeys {
		if s == k {
			return k
		}
	}
	for k, aliases := range statAliases {
		for _, a := range aliases {
			if s == a {
				return k
			}
		}
	}
	return "pts"
}

var datePrefixRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ValidDate reports whether s starts with a YYYY-MM-DD prefix.
func ValidDate(s string) bool {
	return datePrefixRe.MatchString(s)
}

// truncateDate returns the YYYY-MM-DD prefix of s, or "" if s does not
// carry one.
func truncateDate(s string) string {
	return datePrefixRe.FindString(s)
}

// DetectShape sniffs the payload layout once at ingestion. An array is a
// per-game log, an object keyed by player name is an aggregate snapshot,
// anything else (including invalid JSON) is unknown.
func DetectShape(raw []byte) PayloadShape {
	trimmed := strings.TrimLeftFunc(string(raw), func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	switch {
	case strings.HasPrefix(trimmed, "["):
		var rows []json.RawMessage
		if json.Unmarshal(raw, &rows) == nil {
			return ShapeGameLog
		}
	case strings.HasPrefix(trimmed, "{"):
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) == nil {
			return ShapeAggregate
		}
	}
	return ShapeUnknown
}

// Normalize converts a raw stats payload into canonical records. It never
// fails on malformed input: unparseable records are dropped, unrecognized
// payloads yield an empty slice.
func Normalize(raw []byte) []PlayerStatRecord {
	switch DetectShape(raw) {
	case ShapeGameLog:
		return normalizeGameLog(raw)
	case ShapeAggregate:
		return normalizeAggregate(raw)
	default:
		return nil
	}
}

func normalizeGameLog(raw []byte) []PlayerStatRecord {
	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil
	}

	records := make([]PlayerStatRecord, 0, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		fields := lowerKeys(row)

		rec := PlayerStatRecord{
			PlayerID: extractID(fields),
			Name:     extractName(fields),
			Team:     extractTeam(fields),
			GameDate: extractDate(fields),
			Stats:    make(map[string]*float64, len(StatKeys)),
		}
		// A row with no usable identity is malformed; skip it.
		if rec.Name == "" && rec.PlayerID == "" {
			continue
		}
		for key, aliases := range statAliases {
			rec.Stats[key] = lookupNumber(fields, aliases)
		}
		records = append(records, rec)
	}
	return records
}

func normalizeAggregate(raw []byte) []PlayerStatRecord {
	var byName map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byName); err != nil {
		return nil
	}

	records := make([]PlayerStatRecord, 0, len(byName))
	for name, entry := range byName {
		var row map[string]interface{}
		if err := json.Unmarshal(entry, &row); err != nil || row == nil {
			continue // non-object entry, drop it
		}
		fields := lowerKeys(row)

		rec := PlayerStatRecord{
			PlayerID: extractID(fields),
			Name:     strings.TrimSpace(name),
			Team:     extractTeam(fields),
			Stats:    make(map[string]*float64, len(fields)),
		}
		if rec.Name == "" {
			continue
		}
		// Aggregate entries carry season averages and last-5 rollups as flat
		// numeric fields; keep every coercible one.
		for k, v := range fields {
			if n, ok := CoerceNumber(v); ok {
				val := n
				rec.Stats[k] = &val
			}
		}
		records = append(records, rec)
	}
	return records
}

// lowerKeys copies a decoded JSON object with lower-cased keys so alias
// lookups are case-insensitive (SportsData capitalizes, BDL does not).
func lowerKeys(row map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(row))
	for k, v := range row {
		out[strings.ToLower(k)] = v
	}
	return out
}

func extractID(fields map[string]interface{}) string {
	for _, key := range []string{"player_id", "playerid", "id"} {
		if v, ok := fields[key]; ok {
			if s := idString(v); s != "" {
				return s
			}
		}
	}
	if nested, ok := fields["player"].(map[string]interface{}); ok {
		if v, ok := lowerKeys(nested)["id"]; ok {
			return idString(v)
		}
	}
	return ""
}

func extractName(fields map[string]interface{}) string {
	for _, key := range []string{"name", "player_name", "full_name"} {
		if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	if nested, ok := fields["player"].(map[string]interface{}); ok {
		inner := lowerKeys(nested)
		if s, ok := inner["full_name"].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		if full := composeName(inner); full != "" {
			return full
		}
	}
	return composeName(fields)
}

func composeName(fields map[string]interface{}) string {
	first, _ := fields["first_name"].(string)
	last, _ := fields["last_name"].(string)
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

func extractTeam(fields map[string]interface{}) string {
	for _, key := range []string{"team", "team_abbr", "team_abbreviation"} {
		if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.ToUpper(strings.TrimSpace(s))
		}
	}
	if nested, ok := fields["team"].(map[string]interface{}); ok {
		if s, ok := lowerKeys(nested)["abbreviation"].(string); ok {
			return strings.ToUpper(strings.TrimSpace(s))
		}
	}
	return ""
}

func extractDate(fields map[string]interface{}) string {
	for _, key := range []string{"date", "game_date", "gamedate"} {
		if s, ok := fields[key].(string); ok {
			if d := truncateDate(s); d != "" {
				return d
			}
		}
	}
	if nested, ok := fields["game"].(map[string]interface{}); ok {
		if s, ok := lowerKeys(nested)["date"].(string); ok {
			return truncateDate(s)
		}
	}
	return ""
}

func lookupNumber(fields map[string]interface{}, aliases []string) *float64 {
	for _, key := range aliases {
		if v, ok := fields[key]; ok {
			if n, ok := CoerceNumber(v); ok {
				val := n
				return &val
			}
		}
	}
	return nil
}

func idString(v interface{}) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// CoerceNumber normalizes a stat value from the various upstream formats.
//
// SportsData nests some stats as {"total": 15, "average": 1.5}; BDL returns
// flat numbers; scraped tables return strings. This handles all three,
// preferring the aggregate for nested objects.
func CoerceNumber(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		for _, key := range []string{"total", "all", "count", "average"} {
			if inner, exists := v[key]; exists && inner != nil {
				return CoerceNumber(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}
