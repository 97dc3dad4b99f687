package cmdimport

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"uptime-stats/connectors/config"
	"uptime-stats/connectors/datadir"
	"uptime-stats/connectors/statsapi"
	"uptime-stats/connectors/statsjson"
	"uptime-stats/domain/uptime"

	lo "github.com/samber/lo"
)

// Run executes the import subcommand. It expects flag arguments like: -base-url, -config-id, -data, -drilldown.
func Run(args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	baseURL := fs.String("base-url", "", "Upstream stats service URL (optional if CONFIG_PATH provides upstream.base_url)")
	configID := fs.String("config-id", "", "Widget configuration ID passed to the upstream service (optional)")
	dataDir := fs.String("data", "data", "Directory receiving stats.json and drilldown/")
	withDrilldown := fs.Bool("drilldown", false, "Also fetch drilldown payloads for every env/month")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadOrDefault()
	if err != nil {
		slog.Error("import.config.error", "error", err)
		return err
	}
	if *baseURL == "" {
		*baseURL = cfg.Upstream.BaseURL
	}
	if *configID == "" {
		*configID = cfg.Upstream.ConfigID
	}

	slog.Info("import.start", "baseURL", *baseURL, "configID", *configID, "data", *dataDir, "drilldown", *withDrilldown)

	ctx := context.Background()
	client := statsapi.New(nil, *baseURL, os.Getenv("STATS_TOKEN"))

	raw, err := client.Stats(ctx, *configID)
	if err != nil {
		slog.Error("phase.stats.fetch.error", "configID", *configID, "error", err)
		return fmt.Errorf("fetch stats: %w", err)
	}
	if err := writeFile(datadir.StatsPath(*dataDir), raw); err != nil {
		return err
	}

	table, ok := statsjson.Table(raw)
	if !ok {
		slog.Warn("phase.stats.no_table", "reason", "stats payload is not an array")
		slog.Info("import.done", "envs", 0)
		return nil
	}
	slog.Info("phase.stats.fetched", "envs", len(table), "months", len(table.Months()))

	if *withDrilldown {
		fetched := 0
		for _, env := range uptime.SortEnvironments(lo.Keys(table)) {
			for _, month := range uptime.SortMonths(lo.Keys(table[env])) {
				body, err := client.Drilldown(ctx, *configID, env, month)
				if err != nil {
					slog.Warn("phase.drilldown.fetch.error", "env", env, "month", month, "error", err)
					continue
				}
				if err := writeFile(datadir.DrilldownPath(*dataDir, env, month), body); err != nil {
					return err
				}
				fetched++
			}
		}
		slog.Info("phase.drilldown.done", "files", fetched)
	}

	slog.Info("import.done", "envs", len(table))
	return nil
}

func writeFile(path string, b []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
