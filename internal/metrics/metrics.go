package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "portfolio"

// Metrics holds every collector the service exports.
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests   *prometheus.CounterVec
	UpstreamAttempts   *prometheus.CounterVec
	UpstreamDuration   *prometheus.HistogramVec
	HTTPRequests       *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
	RateLimitRemaining *prometheus.GaugeVec
}

// New builds the collectors on a fresh registry so tests never collide on
// the global default one.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		UpstreamRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "requests_total",
				Help:      "GraphQL operations sent to GitHub by outcome",
			},
			[]string{"operation", "outcome"},
		),

		UpstreamAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "attempts_total",
				Help:      "HTTP attempts made for GraphQL operations, retries included",
			},
			[]string{"operation"},
		),

		UpstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "upstream",
				Name:      "duration_seconds",
				Help:      "GraphQL operation latency including retries",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Inbound HTTP requests by route and status",
			},
			[]string{"route", "method", "status"},
		),

		HTTPDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "duration_seconds",
				Help:      "Inbound HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route"},
		),

		RateLimitRemaining: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "github",
				Name:      "ratelimit_remaining",
				Help:      "Last observed GitHub API quota by resource",
			},
			[]string{"resource"},
		),
	}

	m.registry.MustRegister(
		m.UpstreamRequests,
		m.UpstreamAttempts,
		m.UpstreamDuration,
		m.HTTPRequests,
		m.HTTPDuration,
		m.RateLimitRemaining,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
