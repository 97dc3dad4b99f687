package datadir

import (
	"os"
	"path/filepath"
	"strings"

	"uptime-stats/connectors/statsjson"
	"uptime-stats/domain/drilldown"
	"uptime-stats/domain/uptime"
)

// Layout of the data directory shared by import, calculate and web:
//
//	<dir>/stats.json
//	<dir>/drilldown/<env>/<Mon_YYYY>.json

var pathReplacer = strings.NewReplacer("/", "_", "\\", "_", "..", "_", " ", "_")

// StatsPath is the raw stats payload file.
func StatsPath(dir string) string {
	return filepath.Join(dir, "stats.json")
}

// DrilldownPath is the raw drilldown payload file of one env/month.
func DrilldownPath(dir, env, month string) string {
	return filepath.Join(dir, "drilldown", pathReplacer.Replace(env), pathReplacer.Replace(month)+".json")
}

// ReadTable loads and aggregates stats.json. ok is false when the file holds
// something other than a JSON array.
func ReadTable(dir string) (table uptime.Table, ok bool, err error) {
	b, err := os.ReadFile(StatsPath(dir))
	if err != nil {
		return nil, false, err
	}
	table, ok = statsjson.Table(b)
	return table, ok, nil
}

// ReadDrilldown loads the drilldown table of one env/month.
func ReadDrilldown(dir, env, month string) (drilldown.Table, error) {
	b, err := os.ReadFile(DrilldownPath(dir, env, month))
	if err != nil {
		return nil, err
	}
	return statsjson.DecodeDrilldown(b), nil
}
