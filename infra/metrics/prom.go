package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/maelcorre/gridcap/core/metrics"
)

// PromSink exposes solved plans as Prometheus metrics.
type PromSink struct {
	runs      *prometheus.CounterVec
	capacity  *prometheus.GaugeVec
	objective *prometheus.GaugeVec
}

// NewPromSink registers plan metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "plan_runs_total",
		Help: "Number of solved expansion plans",
	}, []string{"scenario"})
	capacity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "planned_capacity",
		Help: "Optimal capacity per technology component (MW, MWh for stores)",
	}, []string{"scenario", "technology"})
	objective := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "plan_objective",
		Help: "Objective value of the solved plan",
	}, []string{"scenario"})

	if err := reg.Register(runs); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			runs = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(capacity); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			capacity = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(objective); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			objective = are.ExistingCollector.(*prometheus.GaugeVec)
		} else {
			return nil, err
		}
	}

	return &PromSink{runs: runs, capacity: capacity, objective: objective}, nil
}

// RecordPlanResult publishes the run counter, objective and per-technology
// capacities.
func (s *PromSink) RecordPlanResult(res coremetrics.PlanResult) error {
	s.runs.WithLabelValues(res.Scenario).Inc()
	s.objective.WithLabelValues(res.Scenario).Set(res.Objective)
	for tech, cap := range res.Capacities {
		s.capacity.WithLabelValues(res.Scenario, tech).Set(cap)
	}
	return nil
}
