package uptime

// StatRecord is one environment-month observation as received from upstream.
// Optional upstream fields are pointers so absence stays distinguishable from zero.
type StatRecord struct {
	Env           string   `json:"env"`
	Month         string   `json:"month"` // "MMM/YYYY", e.g. "Apr/2025"
	Uptime        *float64 `json:"uptime"`
	RedCells      *int     `json:"red_cells"`
	MaxTotalCells int      `json:"max_total_cells"`
}

// Cell is the aggregated figure for one environment-month pair.
// Red+Green == Total always holds. Uptime comes from upstream as-is and may
// disagree with Red/Total.
type Cell struct {
	Uptime *float64 `json:"uptime"`
	Red    int      `json:"red"`
	Green  int      `json:"green"` // Total - Red, negative when upstream is inconsistent
	Total  int      `json:"total"`
}

// Table maps environment -> month -> Cell.
type Table map[string]map[string]Cell

// Lookup returns the cell for env/month and whether it exists.
func (t Table) Lookup(env, month string) (Cell, bool) {
	months, ok := t[env]
	if !ok {
		return Cell{}, false
	}
	c, ok := months[month]
	return c, ok
}

// Only returns a new table restricted to envs. An empty allow-list keeps every environment.
func (t Table) Only(envs []string) Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	if len(envs) == 0 {
		for env, months := range t {
			out[env] = months
		}
		return out
	}
	for _, env := range envs {
		if months, ok := t[env]; ok {
			out[env] = months
		}
	}
	return out
}

// ChartPoint is one month of a single environment's series.
type ChartPoint struct {
	Label     string   `json:"label"`
	MonthKey  string   `json:"month_key"`
	Uptime    *float64 `json:"uptime"`
	Green     int      `json:"green"`
	Incidents int      `json:"incidents"`
	Total     int      `json:"total"`
}
