package metrics

import "time"

// PlanResult is the per-run record emitted after a successful solve.
type PlanResult struct {
	RunID     string
	Scenario  string
	Objective float64
	// Capacities maps decision variable name to built capacity.
	Capacities map[string]float64
	SolvedAt   time.Time
	Duration   time.Duration
}

// MetricsSink records solved plans for observability purposes.
type MetricsSink interface {
	RecordPlanResult(res PlanResult) error
}

// NopSink discards all records.
type NopSink struct{}

func (NopSink) RecordPlanResult(PlanResult) error { return nil }
