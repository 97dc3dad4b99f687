package csv

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"uptime-stats/domain/uptime"

	lo "github.com/samber/lo"
)

// WriteAllCSVs writes the heatmap, series and summary outputs into dir.
func WriteAllCSVs(dir string, table uptime.Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := WriteHeatmapCSV(filepath.Join(dir, "heatmap.csv"), uptime.BuildHeatmap(table)); err != nil {
		return err
	}
	if err := WriteSeriesCSV(filepath.Join(dir, "series.csv"), table); err != nil {
		return err
	}
	if err := WriteSummaryCSV(filepath.Join(dir, "summary.csv"), table); err != nil {
		return err
	}
	return nil
}

// WriteHeatmapCSV writes one row per environment and one column per month.
// Missing observations are written as empty fields.
func WriteHeatmapCSV(path string, grid uptime.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write(append([]string{"env"}, grid.Months...)); err != nil {
		return err
	}
	for _, r := range grid.Rows {
		row := []string{r.Env}
		for _, m := range grid.Months {
			row = append(row, formatGridValue(r.Values[m]))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteSeriesCSV writes every environment's chart points, environments in heatmap order.
func WriteSeriesCSV(path string, table uptime.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	headers := []string{"env", "month", "label", "uptime", "green", "incidents", "total"}
	if err := w.Write(headers); err != nil {
		return err
	}
	for _, env := range uptime.SortEnvironments(lo.Keys(table)) {
		for _, p := range uptime.BuildSeries(table, env) {
			row := []string{
				env,
				p.MonthKey,
				p.Label,
				formatUptime(p.Uptime),
				strconv.Itoa(p.Green),
				strconv.Itoa(p.Incidents),
				strconv.Itoa(p.Total),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}
	return w.Error()
}

// WriteSummaryCSV writes one rollup row per environment.
func WriteSummaryCSV(path string, table uptime.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"env", "months", "total_green", "total_incidents", "average_uptime_percent"}); err != nil {
		return err
	}
	for _, env := range uptime.SortEnvironments(lo.Keys(table)) {
		points := uptime.BuildSeries(table, env)
		s := uptime.Summarize(points)
		row := []string{
			env,
			strconv.Itoa(len(points)),
			strconv.Itoa(s.TotalGreen),
			strconv.Itoa(s.TotalIncidents),
			strconv.FormatFloat(s.AverageUptimePercent, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func formatGridValue(v uptime.GridValue) string {
	if !v.Observed {
		return ""
	}
	return strconv.FormatFloat(v.Value, 'f', -1, 64)
}

func formatUptime(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
