package uptime

import lo "github.com/samber/lo"

// Summary rolls up a series. AverageUptimePercent is weighted by cell counts
// (green / (green + incidents)), not a mean of the monthly uptime values.
type Summary struct {
	TotalGreen           int     `json:"total_green"`
	TotalIncidents       int     `json:"total_incidents"`
	AverageUptimePercent float64 `json:"average_uptime_percent"`
}

// Summarize rolls up points. An empty or all-zero series averages to 0.
func Summarize(points []ChartPoint) Summary {
	s := Summary{
		TotalGreen:     lo.SumBy(points, func(p ChartPoint) int { return p.Green }),
		TotalIncidents: lo.SumBy(points, func(p ChartPoint) int { return p.Incidents }),
	}
	s.AverageUptimePercent = weightedUptime(s.TotalGreen, s.TotalIncidents)
	return s
}

// SummarizeCell rolls up a single month.
func SummarizeCell(c Cell) Summary {
	return Summary{
		TotalGreen:           c.Green,
		TotalIncidents:       c.Red,
		AverageUptimePercent: weightedUptime(c.Green, c.Red),
	}
}

func weightedUptime(green, incidents int) float64 {
	denom := green + incidents
	if denom == 0 {
		return 0
	}
	return round2(float64(green) / float64(denom) * 100)
}
