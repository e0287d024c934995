// Package metrics holds the Prometheus collectors for engine runs and HTTP
// traffic. Collectors live on a private registry so several instances (tests,
// embedded servers) never collide on the default one.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels used by ObserveRun.
const (
	OutcomeOK            = "ok"
	OutcomeInvalid       = "invalid"
	OutcomeNegativeCycle = "negative_cycle"
	OutcomeError         = "error"
)

// Metrics bundles every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal    *prometheus.CounterVec
	runDuration  *prometheus.HistogramVec
	traceLines   *prometheus.HistogramVec
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// New registers all collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		runsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stepgraph",
			Name:      "runs_total",
			Help:      "Algorithm runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		runDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stepgraph",
			Name:      "run_duration_seconds",
			Help:      "Wall time of algorithm runs, graph construction included.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10),
		}, []string{"algorithm"}),
		traceLines: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stepgraph",
			Name:      "trace_lines",
			Help:      "Step Trace length per successful run.",
			Buckets:   prometheus.ExponentialBuckets(4, 4, 8),
		}, []string{"algorithm"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stepgraph",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stepgraph",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveRun records one engine run. steps is ignored unless outcome is
// OutcomeOK or OutcomeNegativeCycle.
func (m *Metrics) ObserveRun(algorithm, outcome string, elapsed time.Duration, steps int) {
	if m == nil {
		return
	}
	m.runsTotal.WithLabelValues(algorithm, outcome).Inc()
	m.runDuration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if outcome == OutcomeOK || outcome == OutcomeNegativeCycle {
		m.traceLines.WithLabelValues(algorithm).Observe(float64(steps))
	}
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
