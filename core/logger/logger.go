// Package logger declares the logging surface shared by the bound
// resolver, the planner and the metric sinks. Backends live under
// infra/logger so core packages stay free of zerolog.
package logger

// Logger exposes leveled logging. Debugw carries structured fields and is
// used for per-variable detail such as resolved bounds and solved
// capacities; the format methods cover everything else.
type Logger interface {
	Debugf(format string, args ...any)
	Debugw(msg string, fields map[string]any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}
