package domain

import "sort"

// GeoZone is a named region with a specificity level and a priority used to
// break ties between overlapping zones at the same level.
type GeoZone struct {
	ID       string
	Name     string
	Level    string
	Priority int64
	IsActive bool
}

// GeoZoneMapping binds a numeric postal-code range [RangeStart, RangeEnd]
// (inclusive on both ends) to one zone. Ranges of distinct zones may overlap.
type GeoZoneMapping struct {
	ID         string
	ZoneID     string
	RangeStart int64
	RangeEnd   int64
}

// Contains reports whether the postal code falls inside the range.
func (m *GeoZoneMapping) Contains(code int64) bool {
	return code >= m.RangeStart && code <= m.RangeEnd
}

// RangeSize is the number of postal codes covered by the mapping.
// Narrower ranges are considered more specific.
func (m *GeoZoneMapping) RangeSize() int64 {
	return m.RangeEnd - m.RangeStart + 1
}

// ZoneMatch is one zone matched by a postal code, carrying the size of the
// matched range for tie-breaking.
type ZoneMatch struct {
	Zone      GeoZone
	RangeSize int64
}

// Specificity ranks for known zone levels. Lower rank = more specific.
// Levels outside this table sort after all known levels.
var levelRanks = map[string]int{
	"zip":      1,
	"city":     2,
	"district": 3,
	"state":    4,
	"region":   5,
	"country":  6,
}

const unrankedLevel = 7

// SpecificityRank maps a zone level to its rank in the hierarchy order.
func SpecificityRank(level string) int {
	if r, ok := levelRanks[level]; ok {
		return r
	}
	return unrankedLevel
}

// SortHierarchy orders matched zones most specific first:
// level rank ascending, then matched-range size ascending, then zone
// priority descending. The sort is stable, so equal keys keep their
// input order. Inactive zones are dropped, and a zone matched through
// several mappings appears once, ranked by its narrowest match.
func SortHierarchy(matches []ZoneMatch) []GeoZone {
	filtered := make([]ZoneMatch, 0, len(matches))
	for _, m := range matches {
		if m.Zone.IsActive {
			filtered = append(filtered, m)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ri, rj := SpecificityRank(filtered[i].Zone.Level), SpecificityRank(filtered[j].Zone.Level)
		if ri != rj {
			return ri < rj
		}
		if filtered[i].RangeSize != filtered[j].RangeSize {
			return filtered[i].RangeSize < filtered[j].RangeSize
		}
		return filtered[i].Zone.Priority > filtered[j].Zone.Priority
	})

	seen := make(map[string]bool, len(filtered))
	zones := make([]GeoZone, 0, len(filtered))
	for _, m := range filtered {
		if seen[m.Zone.ID] {
			continue
		}
		seen[m.Zone.ID] = true
		zones = append(zones, m.Zone)
	}
	return zones
}
