// Package metrics exposes Prometheus instrumentation for the directory
// server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the server's Prometheus collectors. The registerer is
// injected so tests can use private registries.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	LookupsTotal    *prometheus.CounterVec
	NodesLoaded     prometheus.Gauge
}

// New creates and registers all collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datafort_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "datafort_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		LookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "datafort_lookups_total",
				Help: "Path lookups against the tree store",
			},
			[]string{"outcome"},
		),
		NodesLoaded: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "datafort_nodes_loaded",
				Help: "Number of nodes in the loaded directory",
			},
		),
	}
}

// Lookup records one Find against the store.
func (m *Metrics) Lookup(found bool) {
	outcome := "hit"
	if !found {
		outcome = "miss"
	}
	m.LookupsTotal.WithLabelValues(outcome).Inc()
}
