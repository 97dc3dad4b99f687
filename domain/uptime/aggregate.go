package uptime

import "math"

// Aggregate folds records into a Table. Records without an env or month are
// skipped; a later record for the same env/month replaces the earlier one.
func Aggregate(records []StatRecord) Table {
	table := Table{}
	for _, r := range records {
		if r.Env == "" || r.Month == "" {
			continue
		}
		red := 0
		if r.RedCells != nil {
			red = *r.RedCells
		}
		var up *float64
		if r.Uptime != nil {
			v := round2(*r.Uptime)
			up = &v
		}
		if _, ok := table[r.Env]; !ok {
			table[r.Env] = map[string]Cell{}
		}
		table[r.Env][r.Month] = Cell{
			Uptime: up,
			Red:    red,
			Green:  r.MaxTotalCells - red,
			Total:  r.MaxTotalCells,
		}
	}
	return table
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
