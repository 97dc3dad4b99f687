package drilldown

import (
	"sort"
	"strings"
)

// Record is one database/cluster incident row inside a category.
type Record struct {
	Database string `json:"database"`
	Cluster  string `json:"cluster"`
	Count    int    `json:"count"`
}

// Table groups records by incident category.
type Table map[string][]Record

// SortKey names the column a table is sorted by.
type SortKey string

const (
	KeyDatabase SortKey = "database"
	KeyCluster  SortKey = "cluster"
	KeyCount    SortKey = "count"
)

// Direction is the sort order.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseSortKey accepts "database", "cluster" or "count".
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case KeyDatabase, KeyCluster, KeyCount:
		return k, true
	}
	return "", false
}

// ParseDirection accepts "asc"/"ascending" and "desc"/"descending".
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, true
	case "desc", "descending":
		return Descending, true
	}
	return "", false
}

// SortState is the caller-held sort selection.
type SortState struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
}

// DefaultSortState sorts by incident count, highest first.
func DefaultSortState() SortState {
	return SortState{Key: KeyCount, Direction: Descending}
}

// Toggle returns the state after selecting key: the same key while ascending
// flips to descending, anything else starts ascending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key && s.Direction == Ascending {
		return SortState{Key: key, Direction: Descending}
	}
	return SortState{Key: key, Direction: Ascending}
}

// Sort returns a new table with every category's records ordered by key.
// Any direction other than Ascending sorts descending. An unknown key keeps
// each category's input order. Relative order of equal keys is not part of
// the contract. t is never modified.
func Sort(t Table, key SortKey, dir Direction) Table {
	out := make(Table, len(t))
	for category, records := range t {
		sorted := append([]Record{}, records...)
		if less := lessFor(key); less != nil {
			sort.SliceStable(sorted, func(i, j int) bool {
				if dir == Ascending {
					return less(sorted[i], sorted[j])
				}
				return less(sorted[j], sorted[i])
			})
		}
		out[category] = sorted
	}
	return out
}

// Apply sorts t with the state's key and direction.
func (s SortState) Apply(t Table) Table {
	return Sort(t, s.Key, s.Direction)
}

func lessFor(key SortKey) func(a, b Record) bool {
	switch key {
	case KeyDatabase:
		return func(a, b Record) bool { return a.Database < b.Database }
	case KeyCluster:
		return func(a, b Record) bool { return a.Cluster < b.Cluster }
	case KeyCount:
		return func(a, b Record) bool { return a.Count < b.Count }
	}
	return nil
}
