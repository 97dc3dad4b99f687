package uptime

import (
	"sort"
	"strings"
)

// BuildSeries extracts env's months from t as chart points in chronological
// order. An unknown env yields an empty series.
func BuildSeries(t Table, env string) []ChartPoint {
	points := []ChartPoint{}
	months, ok := t[env]
	if !ok {
		return points
	}
	for key, c := range months {
		points = append(points, ChartPoint{
			Label:     seriesLabel(key),
			MonthKey:  key,
			Uptime:    c.Uptime,
			Green:     c.Green,
			Incidents: c.Red,
			Total:     c.Total,
		})
	}
	sort.Slice(points, func(i, j int) bool { return CompareMonths(points[i].MonthKey, points[j].MonthKey) < 0 })
	return points
}

func seriesLabel(key string) string {
	name, year, found := strings.Cut(key, "/")
	if !found {
		return key
	}
	return name + "/" + year
}

// Slice is one wedge of a single env/month breakdown.
type Slice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Breakdown splits one env/month cell into healthy and incident cell counts.
func Breakdown(t Table, env, month string) ([]Slice, bool) {
	c, ok := t.Lookup(env, month)
	if !ok {
		return nil, false
	}
	return []Slice{
		{Name: "Uptime", Value: c.Green},
		{Name: "Incidents", Value: c.Red},
	}, true
}
