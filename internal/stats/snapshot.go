package stats

import (
	"encoding/json"
	"strings"
)

// SnapshotFor extracts one player's raw stat snapshot from a stats payload,
// matched by name (case-insensitive) or player id. Aggregate payloads carry
// the snapshot fields directly; per-game payloads contribute a season
// points mean and the trailing five-game points series, with role and
// matchup context left unset.
func SnapshotFor(raw []byte, player string) (snap Snapshot, id, name string, found bool) {
	switch DetectShape(raw) {
	case ShapeAggregate:
		return snapshotFromAggregate(raw, player)
	case ShapeGameLog:
		return snapshotFromGameLog(raw, player)
	default:
		return Snapshot{}, "", "", false
	}
}

func snapshotFromAggregate(raw []byte, player string) (Snapshot, string, string, bool) {
	var byName map[string]json.RawMessage
	if err := json.Unmarshal(raw, &byName); err != nil {
		return Snapshot{}, "", "", false
	}

	want := normalizeName(player)
	for key, entry := range byName {
		if normalizeName(key) != want {
			continue
		}
		var row map[string]interface{}
		if err := json.Unmarshal(entry, &row); err != nil || row == nil {
			return Snapshot{}, "", "", false
		}
		fields := lowerKeys(row)

		snap := Snapshot{
			SeasonPts: lookupNumber(fields, []string{"pts", "points"}),
			Minutes:   lookupNumber(fields, []string{"min", "minutes"}),
			Usage:     lookupNumber(fields, []string{"usage", "usage_rate"}),
			DefRank:   lookupNumber(fields, []string{"def_rank"}),
			Last5Pts:  lookupNumber(fields, []string{"l5_pts"}),
		}
		if s, ok := fields["opp_streak"].(string); ok {
			snap.OppStreak = strings.TrimSpace(s)
		}
		if b, ok := fields["back_to_back"].(bool); ok {
			snap.BackToBack = b
		}
		// Players carried on the roster with no recorded games have a zeroed
		// placeholder entry; treat it as missing data, not a zero baseline.
		if games := lookupNumber(fields, []string{"games"}); games != nil && *games == 0 {
			snap.SeasonPts = nil
		}
		return snap, extractID(fields), strings.TrimSpace(key), true
	}
	return Snapshot{}, "", "", false
}

func snapshotFromGameLog(raw []byte, player string) (Snapshot, string, string, bool) {
	records := Normalize(raw)
	want := normalizeName(player)

	for _, series := range groupByPlayer(records, "pts") {
		if normalizeName(series.name) != want && series.id != player {
			continue
		}
		snap := Snapshot{}
		if len(series.samples) > 0 {
			season := meanSamples(series.samples)
			snap.SeasonPts = &season
			recent := series.samples
			if len(recent) > aggregateRecentWindow {
				recent = recent[:aggregateRecentWindow]
			}
			for _, s := range recent {
				snap.RecentPoints = append(snap.RecentPoints, s.Value)
			}
		}
		return snap, series.id, series.name, true
	}
	return Snapshot{}, "", "", false
}
