package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "profile_advisor"

// Metrics holds the Prometheus collectors of the service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	analyses         *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	upstreamRequests *prometheus.CounterVec
	rateRemaining    prometheus.Gauge
	httpRequests     *prometheus.CounterVec
}

// New creates the collectors and registers them on a private registry
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.analyses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analyses_total",
		Help:      "Profile analyses by outcome (ok or error code).",
	}, []string{"outcome"})
	m.analysisDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analysis_duration_seconds",
		Help:      "Wall time of a full profile analysis.",
		Buckets:   []float64{0.25, 0.5, 1, 2, 5, 10, 30, 60},
	})
	m.upstreamRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_requests_total",
		Help:      "GitHub API calls by resource and outcome.",
	}, []string{"resource", "outcome"})
	m.rateRemaining = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "github_rate_remaining",
		Help:      "Remaining GitHub API calls as reported by the last response.",
	})
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served by method, route and status.",
	}, []string{"method", "route", "status"})

	m.registry.MustRegister(
		m.analyses,
		m.analysisDuration,
		m.upstreamRequests,
		m.rateRemaining,
		m.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveAnalysis records one finished analysis
func (m *Metrics) ObserveAnalysis(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.analyses.WithLabelValues(outcome).Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
}

// ObserveUpstream records one GitHub API call
func (m *Metrics) ObserveUpstream(resource, outcome string) {
	if m == nil {
		return
	}
	m.upstreamRequests.WithLabelValues(resource, outcome).Inc()
}

// SetRateRemaining records the remaining GitHub quota
func (m *Metrics) SetRateRemaining(remaining int) {
	if m == nil {
		return
	}
	m.rateRemaining.Set(float64(remaining))
}

// ObserveHTTP records one served HTTP request
func (m *Metrics) ObserveHTTP(method, route, status string) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, status).Inc()
}

// Registry exposes the underlying registry, mainly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
