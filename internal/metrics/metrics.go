package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vaultpass/passcheck/internal/strength"
)

// Generation outcomes.
const (
	OutcomeGenerated = "generated"
	OutcomeRejected  = "rejected"
)

type Metrics struct {
	Analyses    *prometheus.CounterVec
	Generations *prometheus.CounterVec
	BreachHits  prometheus.Counter
	Comparisons prometheus.Counter
}

// New registers the collectors on reg. Pass a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passcheck_analyses_total",
			Help: "Total number of analyzed passwords by strength category",
		}, []string{"strength"}),
		Generations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passcheck_generations_total",
			Help: "Total number of password generation requests by outcome",
		}, []string{"outcome"}),
		BreachHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "passcheck_breach_hits_total",
			Help: "Total number of checked passwords found in the breach list",
		}),
		Comparisons: factory.NewCounter(prometheus.CounterOpts{
			Name: "passcheck_comparisons_total",
			Help: "Total number of password comparisons",
		}),
	}
}

// The methods below are no-ops on a nil *Metrics.

func (m *Metrics) ObserveAnalysis(c strength.Category) {
	if m == nil {
		return
	}
	m.Analyses.WithLabelValues(c.String()).Inc()
}

func (m *Metrics) IncrementGenerations(outcome string) {
	if m == nil {
		return
	}
	m.Generations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementBreachHits() {
	if m == nil {
		return
	}
	m.BreachHits.Inc()
}

func (m *Metrics) IncrementComparisons() {
	if m == nil {
		return
	}
	m.Comparisons.Inc()
}
