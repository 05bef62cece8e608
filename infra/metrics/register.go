package metrics

import (
	"github.com/maelcorre/gridcap/core/factory"
	coremetrics "github.com/maelcorre/gridcap/core/metrics"
)

// Built-in sinks self-register so configuration can name them by type.
func init() {
	must(coremetrics.RegisterMetricsSink("prometheus", func(_ map[string]any) (coremetrics.MetricsSink, error) {
		return NewPromSink(nil)
	}))
	must(coremetrics.RegisterMetricsSink("influx", func(conf map[string]any) (coremetrics.MetricsSink, error) {
		var c InfluxConfig
		if err := factory.Decode(conf, &c); err != nil {
			return nil, err
		}
		return NewInfluxSinkWithFallback(c), nil
	}))
	must(coremetrics.RegisterMetricsSink("nop", func(_ map[string]any) (coremetrics.MetricsSink, error) {
		return coremetrics.NopSink{}, nil
	}))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
