package uptime

import (
	"encoding/json"

	lo "github.com/samber/lo"
)

// GridValue is one heatmap cell: an observed uptime percentage or a missing observation.
type GridValue struct {
	Value    float64
	Observed bool
}

// Observed wraps an uptime percentage seen for an env/month.
func Observed(v float64) GridValue { return GridValue{Value: v, Observed: true} }

// Missing marks an env/month without any record.
func Missing() GridValue { return GridValue{} }

// MarshalJSON renders a missing value as null.
func (g GridValue) MarshalJSON() ([]byte, error) {
	if !g.Observed {
		return []byte("null"), nil
	}
	return json.Marshal(g.Value)
}

// UnmarshalJSON accepts a number or null.
func (g *GridValue) UnmarshalJSON(b []byte) error {
	var v *float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	if v == nil {
		*g = Missing()
		return nil
	}
	*g = Observed(*v)
	return nil
}

// HeatmapRow holds one environment's value for every month of the grid.
type HeatmapRow struct {
	Env    string               `json:"env"`
	Values map[string]GridValue `json:"values"`
}

// Grid is the rectangular env x month heatmap.
type Grid struct {
	Months []string     `json:"months"`
	Rows   []HeatmapRow `json:"rows"`
}

// defaultHeatmapUptime is shown for a recorded month whose uptime is unset or zero.
const defaultHeatmapUptime = 100

// HeatmapUptime is the value a recorded cell contributes to the heatmap.
// An unset or zero uptime reads as 100, so a genuine 0% month is
// indistinguishable from a month with no uptime field.
func (c Cell) HeatmapUptime() float64 {
	if c.Uptime == nil || *c.Uptime == 0 {
		return defaultHeatmapUptime
	}
	return *c.Uptime
}

// BuildHeatmap densifies t into a Grid. Every row has an entry for every
// month; env/month pairs without a record are Missing. A nil table yields an
// empty grid.
func BuildHeatmap(t Table) Grid {
	grid := Grid{Months: []string{}, Rows: []HeatmapRow{}}
	if t == nil {
		return grid
	}
	grid.Months = t.Months()
	for _, env := range SortEnvironments(lo.Keys(t)) {
		row := HeatmapRow{Env: env, Values: make(map[string]GridValue, len(grid.Months))}
		for _, month := range grid.Months {
			if c, ok := t.Lookup(env, month); ok {
				row.Values[month] = Observed(c.HeatmapUptime())
			} else {
				row.Values[month] = Missing()
			}
		}
		grid.Rows = append(grid.Rows, row)
	}
	return grid
}

// DefaultEnv is the first environment in heatmap row order.
func DefaultEnv(t Table) (string, bool) {
	if len(t) == 0 {
		return "", false
	}
	return SortEnvironments(lo.Keys(t))[0], true
}
