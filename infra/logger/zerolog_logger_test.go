package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZerologLogger_ComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog("limits", &buf)
	l.Infof("resolved %s via %s", "nuclear", "exact")
	out := buf.String()
	assert.Contains(t, out, `"component":"limits"`)
	assert.Contains(t, out, "resolved nuclear via exact")
}

func TestZerologLogger_DebugwFieldsSorted(t *testing.T) {
	var buf bytes.Buffer
	l := newZerolog("plan", &buf)
	l.Debugw("generator added", map[string]any{"carrier": "solar", "bound_mw": 1500.0})
	out := buf.String()
	assert.Contains(t, out, `"carrier":"solar"`)
	assert.Contains(t, out, `"bound_mw":1500`)
	if strings.Index(out, "bound_mw") > strings.Index(out, "carrier") {
		t.Fatalf("fields not in key order: %s", out)
	}
}

func TestZerologLogger_DevConsoleFormat(t *testing.T) {
	t.Setenv("GRIDCAP_ENV", "dev")
	var buf bytes.Buffer
	l := newZerolog("cli", &buf)
	l.Warnf("no usable limit for %s", "fusion")
	out := buf.String()
	assert.Contains(t, out, "no usable limit for fusion")
	assert.NotContains(t, out, `"message"`)
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debugf("ignored %d", 1)
	l.Debugw("ignored", map[string]any{"k": 1})
	l.Infof("ignored")
	l.Warnf("ignored")
	l.Errorf("ignored")
}
