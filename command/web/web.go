package web

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"

	"uptime-stats/connectors/config"
	"uptime-stats/connectors/datadir"
	dc "uptime-stats/domain/config"
	"uptime-stats/domain/drilldown"
	"uptime-stats/domain/uptime"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	lo "github.com/samber/lo"
)

// Run starts a small Echo web server exposing the derived uptime views as JSON.
//
// Usage:
//
//	uptime-stats web [-addr :8080] [-data ./data]
//
// Endpoints:
//
//	GET /api/table                                  -> aggregated env -> month -> cell table
//	GET /api/heatmap                                -> sorted, densified grid with bands
//	GET /api/series?env=                            -> chronological points + summary (default env when omitted)
//	GET /api/breakdown?env=&month=                  -> uptime/incident split of one cell
//	GET /api/drilldown?env=&month=&key=&direction=  -> sorted incident tables (optional &toggle=<key>)
//	GET /metrics                                    -> Prometheus metrics
func Run(args []string) error {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	addr := fs.String("addr", ":8080", "http listen address (host:port)")
	dataDir := fs.String("data", "./data", "directory containing stats.json and drilldown/")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg, err := config.LoadOrDefault()
	if err != nil {
		return err
	}
	slog.Info("web.start", "addr", *addr, "data", *dataDir)
	return newServer(*dataDir, cfg).Start(*addr)
}

type server struct {
	dataDir string
	cfg     *dc.Config
}

type heatmapRow struct {
	Env    string                      `json:"env"`
	Values map[string]uptime.GridValue `json:"values"`
	Bands  map[string]uptime.Band      `json:"bands"`
}

type heatmapResponse struct {
	Months []string     `json:"months"`
	Labels []string     `json:"labels"`
	Rows   []heatmapRow `json:"rows"`
}

type seriesResponse struct {
	Env     string              `json:"env"`
	Points  []uptime.ChartPoint `json:"points"`
	Summary uptime.Summary      `json:"summary"`
}

type drilldownResponse struct {
	Env    string              `json:"env"`
	Month  string              `json:"month"`
	Sort   drilldown.SortState `json:"sort"`
	Tables drilldown.Table     `json:"tables"`
}

func newServer(dataDir string, cfg *dc.Config) *echo.Echo {
	s := &server{dataDir: dataDir, cfg: cfg}
	e := echo.New()
	e.HideBanner = true

	api := e.Group("/api", instrument)
	api.GET("/table", s.table)
	api.GET("/heatmap", s.heatmap)
	api.GET("/series", s.series)
	api.GET("/breakdown", s.breakdown)
	api.GET("/drilldown", s.drilldown)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	return e
}

// loadTable reads stats.json per request. A payload that is not an array is
// served as an empty table.
func (s *server) loadTable() (uptime.Table, error) {
	table, ok, err := datadir.ReadTable(s.dataDir)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Warn("web.stats.no_table", "path", datadir.StatsPath(s.dataDir))
		table = uptime.Table{}
	}
	table = table.Only(s.cfg.Dashboard.Envs)
	tableEnvironments.Set(float64(len(table)))
	return table, nil
}

// statsError maps a loadTable failure onto a JSON error response.
func (s *server) statsError(c echo.Context, err error) error {
	path := datadir.StatsPath(s.dataDir)
	if errors.Is(err, os.ErrNotExist) {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":   "file not found",
			"path":    path,
			"message": "stats file is missing",
		})
	}
	slog.Error("web.stats.read.error", "path", path, "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]any{
		"error":   err.Error(),
		"path":    path,
		"message": "failed to read stats",
	})
}

func (s *server) table(c echo.Context) error {
	table, err := s.loadTable()
	if err != nil {
		return s.statsError(c, err)
	}
	return c.JSON(http.StatusOK, table)
}

func (s *server) heatmap(c echo.Context) error {
	table, err := s.loadTable()
	if err != nil {
		return s.statsError(c, err)
	}
	grid := uptime.BuildHeatmap(table)
	resp := heatmapResponse{
		Months: grid.Months,
		Labels: lo.Map(grid.Months, func(m string, _ int) string { return uptime.ShortMonthLabel(m) }),
		Rows: lo.Map(grid.Rows, func(r uptime.HeatmapRow, _ int) heatmapRow {
			return heatmapRow{Env: r.Env, Values: r.Values, Bands: lo.MapValues(r.Values, func(v uptime.GridValue, _ string) uptime.Band { return uptime.BandFor(v) })}
		}),
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *server) series(c echo.Context) error {
	table, err := s.loadTable()
	if err != nil {
		return s.statsError(c, err)
	}
	env := c.QueryParam("env")
	if env == "" {
		env, _ = uptime.DefaultEnv(table)
	}
	points := uptime.BuildSeries(table, env)
	return c.JSON(http.StatusOK, seriesResponse{Env: env, Points: points, Summary: uptime.Summarize(points)})
}

func (s *server) breakdown(c echo.Context) error {
	table, err := s.loadTable()
	if err != nil {
		return s.statsError(c, err)
	}
	env, month := c.QueryParam("env"), c.QueryParam("month")
	slices, ok := uptime.Breakdown(table, env, month)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]any{
			"error":   "no data",
			"message": "no record for " + env + " " + month,
		})
	}
	cell, _ := table.Lookup(env, month)
	return c.JSON(http.StatusOK, map[string]any{
		"env":     env,
		"month":   month,
		"slices":  slices,
		"summary": uptime.SummarizeCell(cell),
	})
}

func (s *server) drilldown(c echo.Context) error {
	env, month := c.QueryParam("env"), c.QueryParam("month")
	if env == "" || month == "" {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "env and month are required"})
	}
	state, err := s.sortState(c.QueryParam("key"), c.QueryParam("direction"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
	}
	// toggle applies a header click on top of the current key/direction.
	if t := c.QueryParam("toggle"); t != "" {
		k, ok := drilldown.ParseSortKey(t)
		if !ok {
			return c.JSON(http.StatusBadRequest, map[string]any{"error": errSortKey.Error()})
		}
		state = state.Toggle(k)
	}

	tables, err := datadir.ReadDrilldown(s.dataDir, env, month)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return c.JSON(http.StatusInternalServerError, map[string]any{
				"error":   err.Error(),
				"message": "failed to read drilldown",
			})
		}
		// No incident details for this month.
		tables = drilldown.Table{}
	}
	return c.JSON(http.StatusOK, drilldownResponse{Env: env, Month: month, Sort: state, Tables: state.Apply(tables)})
}

var (
	errSortKey       = errors.New("key must be one of database, cluster, count")
	errSortDirection = errors.New("direction must be asc or desc")
)

// sortState resolves query parameters over the configured default sort.
func (s *server) sortState(key, direction string) (drilldown.SortState, error) {
	state := drilldown.DefaultSortState()
	if k, ok := drilldown.ParseSortKey(s.cfg.Dashboard.DefaultSort.Key); ok {
		state.Key = k
	}
	if d, ok := drilldown.ParseDirection(s.cfg.Dashboard.DefaultSort.Direction); ok {
		state.Direction = d
	}
	if key != "" {
		k, ok := drilldown.ParseSortKey(key)
		if !ok {
			return state, errSortKey
		}
		state.Key = k
	}
	if direction != "" {
		d, ok := drilldown.ParseDirection(direction)
		if !ok {
			return state, errSortDirection
		}
		state.Direction = d
	}
	return state, nil
}
