package limits

import (
	"math"
	"testing"

	"github.com/maelcorre/gridcap/infra/logger"
)

func TestSanitizeValue(t *testing.T) {
	r := NewResolver(Defaults(), logger.NopLogger{})
	if got := r.SanitizeValue(math.Inf(1)); got != 1e6 {
		t.Fatalf("expected ceiling 1e6 got %v", got)
	}
	if got := r.SanitizeValue(42); got != 42 {
		t.Fatalf("finite value must pass through, got %v", got)
	}
	// Negative infinity is not replaced; only +Inf is an unbounded cap.
	if got := r.SanitizeValue(math.Inf(-1)); !math.IsInf(got, -1) {
		t.Fatalf("expected -Inf passthrough got %v", got)
	}
}

func TestSanitizeSlice(t *testing.T) {
	r := NewResolver(Defaults(), logger.NopLogger{})
	in := []float64{1, 2, math.Inf(1), 3, 4}
	out := r.SanitizeSlice(in)
	if len(out) != len(in) {
		t.Fatalf("length changed: %d != %d", len(out), len(in))
	}
	want := []float64{1, 2, 1e6, 3, 4}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("index %d: expected %v got %v", i, want[i], out[i])
		}
	}
	if !math.IsInf(in[2], 1) {
		t.Fatal("input slice was mutated")
	}
}

func TestSanitizeSlice_AllFiniteIdentity(t *testing.T) {
	r := NewResolver(Defaults(), logger.NopLogger{})
	in := []float64{1, 2, 3}
	out := r.SanitizeSlice(in)
	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("identity violated at %d", i)
		}
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	r := NewResolver(Defaults(), logger.NopLogger{})
	in := []float64{math.Inf(1), 7, math.Inf(1)}
	once := r.SanitizeSlice(in)
	twice := r.SanitizeSlice(once)
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("not idempotent at %d: %v != %v", i, once[i], twice[i])
		}
	}
}

func TestSanitizeMap(t *testing.T) {
	r := NewResolver(Defaults(), logger.NopLogger{})
	in := map[string]float64{"solar": 800, "H2": math.Inf(1)}
	out := r.SanitizeMap(in)
	if out["solar"] != 800 {
		t.Fatalf("finite entry changed: %v", out["solar"])
	}
	if out["H2"] != 1e6 {
		t.Fatalf("expected 1e6 got %v", out["H2"])
	}
	if !math.IsInf(in["H2"], 1) {
		t.Fatal("input map was mutated")
	}
}

func TestSanitize_NilInputs(t *testing.T) {
	r := NewResolver(Defaults(), logger.NopLogger{})
	if r.SanitizeSlice(nil) != nil {
		t.Fatal("expected nil slice")
	}
	if r.SanitizeMap(nil) != nil {
		t.Fatal("expected nil map")
	}
}
