package metrics

// MultiSink fans a plan record out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlanResult forwards the record to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordPlanResult(res PlanResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlanResult(res); err != nil {
			return err
		}
	}
	return nil
}
