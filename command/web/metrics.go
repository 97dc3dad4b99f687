package web

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts API requests by route and status.
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "uptime_stats_requests_total",
			Help: "Total number of API requests processed",
		},
		[]string{"route", "method", "status"},
	)

	// requestDuration tracks API latency.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "uptime_stats_request_duration_seconds",
			Help:    "Request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"route", "method"},
	)

	// tableEnvironments is the environment count of the last table served.
	tableEnvironments = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "uptime_stats_table_environments",
			Help: "Number of environments in the most recently loaded uptime table",
		},
	)
)

// instrument records request count and latency per matched route.
func instrument(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		status := c.Response().Status
		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
		}
		route := c.Path()
		requestsTotal.WithLabelValues(route, c.Request().Method, strconv.Itoa(status)).Inc()
		requestDuration.WithLabelValues(route, c.Request().Method).Observe(time.Since(start).Seconds())
		return err
	}
}
