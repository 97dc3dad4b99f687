package uptime

// Band is a named uptime bucket used to shade heatmap cells.
type Band string

const (
	BandNoData    Band = "no_data"
	BandExcellent Band = "excellent"
	BandGreat     Band = "great"
	BandGood      Band = "good"
	BandFair      Band = "fair"
	BandDegraded  Band = "degraded"
	BandPoor      Band = "poor"
	BandCritical  Band = "critical"
)

// bandFloors is checked top-down; the first floor the value reaches wins.
var bandFloors = []struct {
	floor float64
	band  Band
}{
	{99.99, BandExcellent},
	{99.9, BandGreat},
	{99.5, BandGood},
	{99.0, BandFair},
	{98.0, BandDegraded},
	{95.0, BandPoor},
}

// BandFor classifies a heatmap value.
func BandFor(v GridValue) Band {
	if !v.Observed {
		return BandNoData
	}
	for _, b := range bandFloors {
		if v.Value >= b.floor {
			return b.band
		}
	}
	return BandCritical
}
