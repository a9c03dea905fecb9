package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Catalog cache lookup results.
const (
	CacheHit  = "hit"
	CacheMiss = "miss"
)

// Metrics holds all Prometheus metrics for the application. Each instance
// owns its registry so several can coexist in tests.
type Metrics struct {
	registry *prometheus.Registry

	UpstreamRequests *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	CatalogLookups   *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics, plus the Go runtime and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		UpstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_upstream_requests_total",
			Help: "PokéAPI requests by endpoint kind and outcome",
		}, []string{"endpoint", "outcome"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pokedex_upstream_request_duration_seconds",
			Help:    "Latency of PokéAPI requests",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		CatalogLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pokedex_catalog_cache_lookups_total",
			Help: "Full-catalog cache lookups by result",
		}, []string{"result"}),
	}
}

// ObserveUpstream records one PokéAPI request.
func (m *Metrics) ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	m.UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	m.UpstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveCatalogLookup records whether the catalog was served from cache.
func (m *Metrics) ObserveCatalogLookup(hit bool) {
	result := CacheMiss
	if hit {
		result = CacheHit
	}
	m.CatalogLookups.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
