// Package metrics exposes registry and lifecycle counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// Import preview outcomes.
const (
	OutcomePreviewed = "previewed"
	OutcomeApplied   = "applied"
	OutcomeDiscarded = "discarded"
	OutcomeStale     = "stale"
)

// Recorder records domain metrics. A nil *Recorder is valid and records nothing.
type Recorder struct {
	importChanges    *prometheus.CounterVec
	importPreviews   *prometheus.CounterVec
	checkInAttempts  *prometheus.CounterVec
	checkInResponses *prometheus.CounterVec
	overdueEntries   prometheus.Gauge
	suspectedEntries prometheus.Counter

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRegistry creates a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewRecorder registers every freedge metric on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		importChanges: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freedge_import_changes_total",
			Help: "Registry entries changed by applied imports",
		}, []string{"kind"}),
		importPreviews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freedge_import_previews_total",
			Help: "Import previews by outcome",
		}, []string{"outcome"}),
		checkInAttempts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freedge_checkin_attempts_total",
			Help: "Check-in attempts opened by contact method",
		}, []string{"method"}),
		checkInResponses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freedge_checkin_responses_total",
			Help: "Resolved check-in attempts by caretaker response",
		}, []string{"response"}),
		overdueEntries: factory.NewGauge(prometheus.GaugeOpts{
			Name: "freedge_overdue_entries",
			Help: "Entries overdue for confirmation at the last selection",
		}),
		suspectedEntries: factory.NewCounter(prometheus.CounterOpts{
			Name: "freedge_suspected_inactive_total",
			Help: "Entries moved to suspected inactive by the stale sweep",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "freedge_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "path", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freedge_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// ImportApplied counts the entries added, removed and modified by one import.
func (r *Recorder) ImportApplied(added, removed, modified int) {
	if r == nil {
		return
	}
	r.importChanges.WithLabelValues("added").Add(float64(added))
	r.importChanges.WithLabelValues("removed").Add(float64(removed))
	r.importChanges.WithLabelValues("modified").Add(float64(modified))
}

// ImportPreview counts a preview outcome.
func (r *Recorder) ImportPreview(outcome string) {
	if r == nil {
		return
	}
	r.importPreviews.WithLabelValues(outcome).Inc()
}

// CheckInOpened counts a new attempt.
func (r *Recorder) CheckInOpened(method string) {
	if r == nil {
		return
	}
	r.checkInAttempts.WithLabelValues(method).Inc()
}

// CheckInResolved counts a resolved attempt.
func (r *Recorder) CheckInResolved(response string) {
	if r == nil {
		return
	}
	r.checkInResponses.WithLabelValues(response).Inc()
}

// OverdueEntries sets the overdue gauge.
func (r *Recorder) OverdueEntries(n int) {
	if r == nil {
		return
	}
	r.overdueEntries.Set(float64(n))
}

// EntriesSuspected counts entries moved to suspected inactive.
func (r *Recorder) EntriesSuspected(n int) {
	if r == nil {
		return
	}
	r.suspectedEntries.Add(float64(n))
}

// Middleware records request counts and durations per route template.
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if r == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				}
			}

			r.httpRequests.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
			r.httpDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
}

// Module provides the registry and recorder.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(registry *prometheus.Registry) prometheus.Registerer { return registry },
		NewRecorder,
	),
)
