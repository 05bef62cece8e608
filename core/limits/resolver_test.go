package limits

import (
	"math"
	"testing"

	"github.com/maelcorre/gridcap/infra/logger"
)

func testResolver(t *Table) *Resolver {
	return NewResolver(t, logger.NopLogger{})
}

func TestBound_ExactMatch(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.Bound("nuclear", Generator, 1); got != 1650 {
		t.Fatalf("expected 1650 got %v", got)
	}
	if got := r.Bound("Iron-Air", StoragePower, 1); got != 200 {
		t.Fatalf("expected 200 got %v", got)
	}
}

func TestBound_Multiplier(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.Bound("solar", Generator, 2.5); got != 2000 {
		t.Fatalf("expected 2000 got %v", got)
	}
}

func TestBound_PartialMatch(t *testing.T) {
	table := Defaults()
	r := testResolver(table)
	// Single matching key avoids any tie-break ambiguity.
	if got := r.Bound("biomass CHP", Generator, 1); got != table.Generators["biomass"] {
		t.Fatalf("expected biomass bound got %v", got)
	}
}

func TestBound_PartialMatchWinsOverDefault(t *testing.T) {
	table := &Table{
		StoragePower: map[string]float64{DefaultKey: 2000, "offwind": 1200},
		System:       map[string]float64{},
	}
	r := testResolver(table)
	if got := r.Bound("offwind-ac-float", StoragePower, 1); got != 1200 {
		t.Fatalf("expected partial match 1200 got %v", got)
	}
}

func TestBound_LongestPartialMatchWins(t *testing.T) {
	table := &Table{
		Generators: map[string]float64{
			DefaultKey:   5000,
			"offwind":    700,
			"offwind-ac": 1200,
		},
		System: map[string]float64{},
	}
	r := testResolver(table)
	if got := r.Bound("offwind-ac-float", Generator, 1); got != 1200 {
		t.Fatalf("expected longest key to win, got %v", got)
	}
}

func TestBound_CategoryDefault(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.Bound("fusion", Generator, 1); got != 5000 {
		t.Fatalf("expected default 5000 got %v", got)
	}
	if got := r.Bound("gravity", StoragePower, 3); got != 6000 {
		t.Fatalf("expected default*3 got %v", got)
	}
}

func TestBound_SystemProxy(t *testing.T) {
	table := &Table{
		Generators: map[string]float64{},
		System:     map[string]float64{TotalRenewableCapacity: 200000},
	}
	r := testResolver(table)
	if got := r.Bound("anything", Generator, 1); got != 2000 {
		t.Fatalf("expected 200000/100 got %v", got)
	}
}

func TestBound_HardFallback(t *testing.T) {
	r := testResolver(&Table{})
	if got := r.Bound("anything", StoragePower, 1); got != 5000 {
		t.Fatalf("expected hard fallback 5000 got %v", got)
	}
	if got := r.Bound("x", Line, 1); got != 5000 {
		t.Fatalf("line without cap should fall back, got %v", got)
	}
}

func TestBound_LinesAndLinks(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.Bound("", Line, 1); got != 4000 {
		t.Fatalf("expected 4000 got %v", got)
	}
	if got := r.Bound("", Link, 1); got != 6000 {
		t.Fatalf("expected 6000 got %v", got)
	}
}

func TestExtensionBound(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.ExtensionBound(Line, 1); got != 4000 {
		t.Fatalf("expected 4000 got %v", got)
	}
	if got := r.ExtensionBound(Link, 2); got != 12000 {
		t.Fatalf("expected 12000 got %v", got)
	}
	// Unset extension falls back to the rating cap of the category.
	capOnly := testResolver(&Table{LineCap: 3200})
	if got := capOnly.ExtensionBound(Line, 1); got != 3200 {
		t.Fatalf("expected 3200 got %v", got)
	}
	if got := testResolver(&Table{}).ExtensionBound(Link, 1); got != 5000 {
		t.Fatalf("expected hard fallback 5000 got %v", got)
	}
}

// A System-category bound is the named aggregate ceiling, not a carrier
// lookup.
func TestBound_SystemCategory(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.Bound(TotalStorageEnergy, System, 1); got != 2000000 {
		t.Fatalf("expected 2000000 got %v", got)
	}
	if got := r.Bound(MaxOperationalHours, System, 0.5); got != 5e5 {
		t.Fatalf("expected 5e5 got %v", got)
	}
	if got := testResolver(&Table{}).Bound("no_such_limit", System, 1); got != 10000 {
		t.Fatalf("expected generic fallback 10000 got %v", got)
	}
}

// Defective table entries (inf, NaN, negative) must be skipped, never
// returned.
func TestBound_AlwaysFiniteNonNegative(t *testing.T) {
	table := &Table{
		Generators: map[string]float64{
			DefaultKey: math.Inf(1),
			"solar":    math.NaN(),
			"onwind":   -5,
		},
		System: map[string]float64{TotalRenewableCapacity: math.Inf(1)},
	}
	r := testResolver(table)
	carriers := []string{"solar", "onwind", "unknown", ""}
	for _, c := range carriers {
		got := r.Bound(c, Generator, 1)
		if math.IsInf(got, 0) || math.IsNaN(got) || got < 0 {
			t.Fatalf("carrier %q: bound %v is not finite non-negative", c, got)
		}
	}
}

func TestEnergyBound(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.EnergyBound("H2"); got != 2000000 {
		t.Fatalf("expected 2 TWh got %v", got)
	}
	if got := r.EnergyBound("Iron-Air"); got != 2000 {
		t.Fatalf("expected 2000 got %v", got)
	}
	if got := r.EnergyBound("unknown"); got != 50000 {
		t.Fatalf("expected energy default 50000 got %v", got)
	}
	empty := testResolver(&Table{})
	if got := empty.EnergyBound("unknown"); got != 50000 {
		t.Fatalf("expected energy hard fallback 50000 got %v", got)
	}
}

func TestSystemLimit(t *testing.T) {
	r := testResolver(Defaults())
	if got := r.SystemLimit(TotalStorageEnergy); got != 2000000 {
		t.Fatalf("expected 2000000 got %v", got)
	}
	empty := testResolver(&Table{})
	if got := empty.SystemLimit(MaxOperationalHours); got != 1e6 {
		t.Fatalf("expected builtin fallback 1e6 got %v", got)
	}
	if got := empty.SystemLimit("no_such_limit"); got != 10000 {
		t.Fatalf("expected generic fallback 10000 got %v", got)
	}
}

func TestValidateBound(t *testing.T) {
	r := testResolver(Defaults())
	if !r.ValidateBound("nuclear", Generator, 1600) {
		t.Fatal("1600 MW nuclear unit should pass")
	}
	if r.ValidateBound("nuclear", Generator, 1700) {
		t.Fatal("1700 MW nuclear unit should fail")
	}
}

func TestParseCategory(t *testing.T) {
	cat, err := ParseCategory("storage-power")
	if err != nil || cat != StoragePower {
		t.Fatalf("expected StoragePower got %v err %v", cat, err)
	}
	if _, err := ParseCategory("bogus"); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestDefaults_EveryCarrierTableHasDefault(t *testing.T) {
	table := Defaults()
	for _, cat := range []Category{Generator, StoragePower, StorageEnergy} {
		if _, ok := table.carriers(cat)[DefaultKey]; !ok {
			t.Fatalf("category %s missing default entry", cat)
		}
	}
}
