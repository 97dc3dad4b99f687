package uptime

import (
	"sort"
	"strconv"
	"strings"

	lo "github.com/samber/lo"
)

// monthNames is the fixed calendar order used to rank "MMM/YYYY" keys.
var monthNames = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// Month is a parsed "MMM/YYYY" key. Index is -1 for an unknown month name.
type Month struct {
	Name  string
	Index int
	Year  int
}

// ParseMonth splits a "MMM/YYYY" key. ok is false when the key has no year
// part or the year is not an integer; the returned Month still carries
// whatever could be read so it can be ordered.
func ParseMonth(key string) (Month, bool) {
	name, yearStr, found := strings.Cut(key, "/")
	m := Month{Name: name, Index: lo.IndexOf(monthNames, name)}
	if !found {
		return m, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(yearStr))
	if err != nil {
		return m, false
	}
	m.Year = year
	return m, m.Index >= 0
}

// CompareMonths orders month keys by (year, calendar index). Keys that rank
// equal fall back to plain string order so the result is total.
func CompareMonths(a, b string) int {
	ma, _ := ParseMonth(a)
	mb, _ := ParseMonth(b)
	switch {
	case ma.Year != mb.Year:
		return cmpInt(ma.Year, mb.Year)
	case ma.Index != mb.Index:
		return cmpInt(ma.Index, mb.Index)
	default:
		return strings.Compare(a, b)
	}
}

// SortMonths returns a chronologically sorted copy of months.
func SortMonths(months []string) []string {
	out := append([]string{}, months...)
	sort.Slice(out, func(i, j int) bool { return CompareMonths(out[i], out[j]) < 0 })
	return out
}

// Months collects every month present under any environment, sorted chronologically.
func (t Table) Months() []string {
	all := lo.FlatMap(lo.Values(t), func(m map[string]Cell, _ int) []string { return lo.Keys(m) })
	return SortMonths(lo.Uniq(all))
}

// ShortMonthLabel turns "Apr/2025" into "Apr/25" for compact headers.
func ShortMonthLabel(key string) string {
	if key == "" {
		return ""
	}
	name, year, found := strings.Cut(key, "/")
	if !found {
		return key
	}
	if len(year) > 2 {
		year = year[2:]
	}
	return name + "/" + year
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
