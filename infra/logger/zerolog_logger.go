package logger

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// zerologLogger adapts rs/zerolog to the core Logger interface.
type zerologLogger struct {
	log zerolog.Logger
}

// NewZerologLogger returns a Logger writing JSON lines to stdout. When
// GRIDCAP_ENV is "dev" the output switches to zerolog's console format.
// Every line carries the component field so resolver, planner and sink
// logs can be told apart.
func NewZerologLogger(component string) Logger {
	return newZerolog(component, os.Stdout)
}

func newZerolog(component string, out io.Writer) Logger {
	if strings.ToLower(os.Getenv("GRIDCAP_ENV")) == "dev" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}
	z := zerolog.New(out).With().Timestamp().Str("component", component).Logger()
	return &zerologLogger{log: z}
}

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msgf(format, args...)
}

// Debugw writes fields in key order so repeated runs produce identical
// lines for identical inputs.
func (l *zerologLogger) Debugw(msg string, fields map[string]any) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ev := l.log.Debug()
	for _, k := range keys {
		ev = ev.Interface(k, fields[k])
	}
	ev.Msg(msg)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.log.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.log.Error().Msgf(format, args...)
}
