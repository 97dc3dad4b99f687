package calculate

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"uptime-stats/connectors/config"
	ccsv "uptime-stats/connectors/csv"
	"uptime-stats/connectors/datadir"
	"uptime-stats/domain/uptime"

	lo "github.com/samber/lo"
)

// Run executes the calculate command: reads <data>/stats.json and writes
// heatmap.csv, series.csv and summary.csv next to it.
func Run(args []string) error {
	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	dataDir := fs.String("data", "data", "directory containing stats.json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf("calculate: unexpected arguments %v", fs.Args())
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}

	table, ok, err := datadir.ReadTable(*dataDir)
	if err != nil {
		return err
	}
	if !ok {
		slog.Warn("calculate.no_table", "reason", "stats.json is not an array")
		table = uptime.Table{}
	}
	table = table.Only(cfg.Dashboard.Envs)

	if err := ccsv.WriteAllCSVs(*dataDir, table); err != nil {
		return err
	}

	for _, env := range uptime.SortEnvironments(lo.Keys(table)) {
		s := uptime.Summarize(uptime.BuildSeries(table, env))
		slog.Info("calculate.env", "env", env, "months", len(table[env]), "averageUptime", s.AverageUptimePercent, "incidents", s.TotalIncidents)
	}

	fmt.Fprintf(os.Stderr, "calculate.done envs=%d months=%d\n", len(table), len(table.Months()))
	return nil
}
