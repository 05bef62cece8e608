// Package factory provides the generic registry behind the metric sink
// configuration: each sink type registers a builder under its name, and
// the type/conf pair from the config file picks and parameterizes one.
//
// The influx sink, for example, registers itself as:
//
//	reg := factory.NewRegistry[metrics.MetricsSink]()
//	reg.Register("influx", func(conf map[string]any) (metrics.MetricsSink, error) {
//	    var c InfluxConfig
//	    if err := factory.Decode(conf, &c); err != nil {
//	        return nil, err
//	    }
//	    return NewInfluxSinkWithFallback(c), nil
//	})
//	sink, err := reg.Create(factory.Config{Type: "influx", Conf: map[string]any{"url": "http://localhost:8086"}})
package factory
