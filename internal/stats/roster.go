package stats

import (
	"encoding/json"
	"strings"
)

// RosterEntry is one player's roster row. Upstream roster payloads key
// players inconsistently — some rows carry only an id, some only a name —
// so both are optional and the index keys on whichever is present.
type RosterEntry struct {
	ID       string
	Name     string
	Team     string
	Position string
}

// TeamPosition is the join target for team/position filtering.
type TeamPosition struct {
	Team     string
	Position string
}

// RosterIndex is a lookup from player identity to team and position, used
// only for filter joins. A missing or unfetchable roster resolves to an
// empty index: filters then never match rather than aborting the pipeline.
type RosterIndex struct {
	byID   map[string]TeamPosition
	byName map[string]TeamPosition
}

// BuildRosterIndex parses a roster payload and indexes it by id and name.
// Two layouts are accepted: the flat entry list written by the BDL roster
// build, and the legacy {team: [names]} mapping. Anything unparseable
// yields an empty index, never an error.
func BuildRosterIndex(raw []byte) RosterIndex {
	idx := RosterIndex{
		byID:   make(map[string]TeamPosition),
		byName: make(map[string]TeamPosition),
	}

	var rows []map[string]interface{}
	if err := json.Unmarshal(raw, &rows); err == nil {
		for _, row := range rows {
			if row == nil {
				continue
			}
			idx.add(parseRosterEntry(lowerKeys(row)))
		}
		return idx
	}

	// Legacy shape: {"LAL": ["LeBron James", ...], ...}
	var byTeam map[string][]string
	if err := json.Unmarshal(raw, &byTeam); err == nil {
		for team, names := range byTeam {
			for _, name := range names {
				idx.add(RosterEntry{Name: name, Team: strings.ToUpper(team)})
			}
		}
	}
	return idx
}

func parseRosterEntry(fields map[string]interface{}) RosterEntry {
	entry := RosterEntry{
		ID:   extractID(fields),
		Name: extractName(fields),
		Team: extractTeam(fields),
	}
	for _, key := range []string{"pos", "position"} {
		if s, ok := fields[key].(string); ok && strings.TrimSpace(s) != "" {
			entry.Position = strings.ToUpper(strings.TrimSpace(s))
			break
		}
	}
	return entry
}

func (idx *RosterIndex) add(entry RosterEntry) {
	if entry.ID == "" && entry.Name == "" {
		return
	}
	tp := TeamPosition{Team: entry.Team, Position: entry.Position}
	if entry.ID != "" {
		idx.byID[entry.ID] = tp
	}
	if entry.Name != "" {
		idx.byName[normalizeName(entry.Name)] = tp
	}
}

// Lookup resolves a player to team/position, trying id first, then name.
func (idx RosterIndex) Lookup(id, name string) (TeamPosition, bool) {
	if id != "" {
		if tp, ok := idx.byID[id]; ok {
			return tp, true
		}
	}
	if name != "" {
		if tp, ok := idx.byName[normalizeName(name)]; ok {
			return tp, true
		}
	}
	return TeamPosition{}, false
}

// Len reports how many distinct name keys the index holds.
func (idx RosterIndex) Len() int {
	return len(idx.byName)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
