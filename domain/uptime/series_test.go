package uptime

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildSeries(t *testing.T) {
	table := Table{"prod": {
		"Jan/2025": {Uptime: fptr(99.9), Red: 1, Green: 9, Total: 10},
		"Nov/2024": {Uptime: fptr(100), Red: 0, Green: 10, Total: 10},
		"Mar/2025": {Red: 5, Green: 5, Total: 10},
	}}
	want := []ChartPoint{
		{Label: "Nov/2024", MonthKey: "Nov/2024", Uptime: fptr(100), Green: 10, Incidents: 0, Total: 10},
		{Label: "Jan/2025", MonthKey: "Jan/2025", Uptime: fptr(99.9), Green: 9, Incidents: 1, Total: 10},
		{Label: "Mar/2025", MonthKey: "Mar/2025", Green: 5, Incidents: 5, Total: 10},
	}
	if diff := cmp.Diff(want, BuildSeries(table, "prod")); diff != "" {
		t.Errorf("BuildSeries() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSeries_UnknownEnv(t *testing.T) {
	got := BuildSeries(Table{"prod": {"Jan/2025": {}}}, "qa")
	if got == nil || len(got) != 0 {
		t.Errorf("BuildSeries(unknown) = %#v, want empty slice", got)
	}
	if got := BuildSeries(nil, "prod"); len(got) != 0 {
		t.Errorf("BuildSeries(nil) = %#v, want empty slice", got)
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name   string
		points []ChartPoint
		want   Summary
	}{
		{
			name:   "empty series guards division",
			points: nil,
			want:   Summary{},
		},
		{
			name:   "all zero counts guard division",
			points: []ChartPoint{{Green: 0, Incidents: 0}},
			want:   Summary{},
		},
		{
			name: "weighted by cell counts",
			points: []ChartPoint{
				{Uptime: fptr(50), Green: 1, Incidents: 1},
				{Uptime: fptr(100), Green: 98, Incidents: 0},
			},
			// a plain mean of uptimes would be 75
			want: Summary{TotalGreen: 99, TotalIncidents: 1, AverageUptimePercent: 99},
		},
		{
			name:   "rounded to two decimals",
			points: []ChartPoint{{Green: 2, Incidents: 1}},
			want:   Summary{TotalGreen: 2, TotalIncidents: 1, AverageUptimePercent: 66.67},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Summarize(tt.points)); diff != "" {
				t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummarizeCell(t *testing.T) {
	got := SummarizeCell(Cell{Red: 1, Green: 3, Total: 4})
	want := Summary{TotalGreen: 3, TotalIncidents: 1, AverageUptimePercent: 75}
	if got != want {
		t.Errorf("SummarizeCell() = %+v, want %+v", got, want)
	}
	if got := SummarizeCell(Cell{}); got.AverageUptimePercent != 0 {
		t.Errorf("SummarizeCell(empty) average = %v, want 0", got.AverageUptimePercent)
	}
}

func TestBreakdown(t *testing.T) {
	table := Table{"prod": {"Jan/2025": {Red: 2, Green: 8, Total: 10}}}
	got, ok := Breakdown(table, "prod", "Jan/2025")
	if !ok {
		t.Fatal("Breakdown() reported missing cell")
	}
	want := []Slice{{Name: "Uptime", Value: 8}, {Name: "Incidents", Value: 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Breakdown() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := Breakdown(table, "prod", "Feb/2025"); ok {
		t.Error("Breakdown() on absent month should report false")
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	records := []StatRecord{
		{Env: "prod", Month: "Jan/2025", Uptime: fptr(99.95), RedCells: iptr(1), MaxTotalCells: 1000},
		{Env: "prod", Month: "Feb/2025", Uptime: fptr(100), RedCells: iptr(0), MaxTotalCells: 1000},
	}
	table := Aggregate(records)

	grid := BuildHeatmap(table)
	if diff := cmp.Diff([]string{"Jan/2025", "Feb/2025"}, grid.Months); diff != "" {
		t.Errorf("months mismatch (-want +got):\n%s", diff)
	}
	if len(grid.Rows) != 1 || grid.Rows[0].Env != "prod" {
		t.Fatalf("rows = %+v, want single prod row", grid.Rows)
	}
	for month, want := range map[string]GridValue{"Jan/2025": Observed(99.95), "Feb/2025": Observed(100)} {
		if got := grid.Rows[0].Values[month]; got != want {
			t.Errorf("prod %s = %+v, want %+v", month, got, want)
		}
	}

	summary := Summarize(BuildSeries(table, "prod"))
	if summary.AverageUptimePercent != 99.95 {
		t.Errorf("average uptime = %v, want 99.95", summary.AverageUptimePercent)
	}
}
