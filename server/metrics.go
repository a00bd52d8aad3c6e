package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/swyrknt/distinction-engine/engine"
)

// Metrics holds all Prometheus metrics for the snapshot server. Each Server
// owns its own registry so independent instances (and tests) never collide on
// registration.
type Metrics struct {
	Registry *prometheus.Registry

	RequestsTotal  *prometheus.CounterVec
	GrowStepsTotal prometheus.Counter
	GrowRunsTotal  prometheus.Counter
}

// NewMetrics creates and registers all metrics, including gauge projections
// of the engine's monotone counts.
func NewMetrics(e *engine.Engine) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		Registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "distinction_http_requests_total",
			Help: "Total HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		GrowStepsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "distinction_grow_steps_total",
			Help: "Total synthesis steps executed through the grow endpoint.",
		}),
		GrowRunsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "distinction_grow_runs_total",
			Help: "Total grow runs accepted by the grow endpoint.",
		}),
	}

	// Registry size gauges read straight off the engine; both are
	// monotonically non-decreasing by the append-only invariant.
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "distinction_registry_distinctions",
		Help: "Current number of distinctions in the registry.",
	}, func() float64 { return float64(e.DistinctionCount()) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "distinction_registry_relationships",
		Help: "Current number of relationships in the registry.",
	}, func() float64 { return float64(e.RelationshipCount()) })

	return m
}
