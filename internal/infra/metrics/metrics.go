// Package metrics exposes Prometheus collectors for the console.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ummana"

// Result labels.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics owns a private registry so tests can build as many as they need.
// A nil *Metrics records nothing.
type Metrics struct {
	registry *prometheus.Registry

	directoryRequests *prometheus.CounterVec
	directoryLatency  *prometheus.HistogramVec
	submissions       *prometheus.CounterVec
	openDrafts        prometheus.Gauge
	httpRequests      *prometheus.CounterVec
}

// New registers the console collectors plus the Go and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		directoryRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "requests_total",
			Help:      "Total number of calls made to the directory service.",
		}, []string{"operation", "status"}),
		directoryLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "directory",
			Name:      "request_duration_seconds",
			Help:      "Latency distribution of directory service calls.",
			Buckets: []float64{
				0.01, 0.025, 0.05,
				0.1, 0.25, 0.5,
				1, 2.5, 5, 10, 30,
			},
		}, []string{"operation"}),
		submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "submissions_total",
			Help:      "Total number of form submissions by kind and result.",
		}, []string{"kind", "result"}),
		openDrafts: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "forms",
			Name:      "open_drafts",
			Help:      "Current number of open form drafts.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of console API requests by route and status.",
		}, []string{"method", "route", "status"}),
	}
}

// ObserveDirectoryCall records one upstream call. status is 0 when the call
// failed before a response arrived.
func (m *Metrics) ObserveDirectoryCall(operation string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}

	m.directoryRequests.WithLabelValues(operation, label).Inc()
	m.directoryLatency.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveSubmission records a form submission outcome.
func (m *Metrics) ObserveSubmission(kind string, ok bool) {
	if m == nil {
		return
	}

	result := ResultFailure
	if ok {
		result = ResultSuccess
	}
	m.submissions.WithLabelValues(kind, result).Inc()
}

// SetOpenDrafts reports the number of drafts currently held.
func (m *Metrics) SetOpenDrafts(n int) {
	if m == nil {
		return
	}
	m.openDrafts.Set(float64(n))
}

// ObserveHTTPRequest counts one served API request. route is the registered
// path pattern, not the raw URL.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

// Registry exposes the underlying registry for tests and custom collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
