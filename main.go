package main

import (
	"fmt"
	"log/slog"
	"os"

	cmdcalculate "uptime-stats/command/calculate"
	cmdimport "uptime-stats/command/import"
	cmdweb "uptime-stats/command/web"
)

// Uptime dashboard backend: turns per-environment monthly uptime records into
// heatmap, series and drilldown views.
// Usage:
//   uptime-stats import [-base-url http://localhost:5000] [-config-id ID] [-data ./data] [-drilldown]
//   uptime-stats calculate [-data ./data]
//   uptime-stats web [-addr :8080] [-data ./data]
// Notes:
// - import stores raw upstream payloads; calculate and web only reshape them.
// - STATS_TOKEN, when set, is sent to the upstream service as a bearer token.

func main() {
	args := os.Args
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(h))

	if len(args) > 1 {
		sub := args[1]
		rest := append([]string{}, args[2:]...)
		switch sub {
		case "import":
			if err := cmdimport.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "calculate":
			if err := cmdcalculate.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		case "web":
			if err := cmdweb.Run(rest); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			return
		}
	}
	fmt.Fprintln(os.Stderr, "usage: uptime-stats import [-base-url <url>] [-config-id <id>] [-data <dir>] [-drilldown] | calculate [-data <dir>] | web [-addr :8080] [-data <dir>]\nENV: set CONFIG_PATH to point to a YAML config file (default ./config.yml), STATS_TOKEN for upstream auth")
	os.Exit(2)
}
