package limits

import (
	"math"
	"strings"

	"github.com/maelcorre/gridcap/core/logger"
)

const (
	// assumedFleetSize divides system-wide ceilings when they stand in for
	// a missing per-carrier bound, approximating the number of buses a
	// national fleet is spread over.
	assumedFleetSize = 100
	// hardPowerFallback is the last-resort power bound in MW.
	hardPowerFallback = 5000
	// hardEnergyFallback is the last-resort energy bound in MWh.
	hardEnergyFallback = 50000
	// hardSystemFallback is returned for unrecognised system limit names.
	hardSystemFallback = 10000
)

// systemFallbacks backs ResolveSystemLimit when the table carries no entry
// for the requested name.
var systemFallbacks = map[string]float64{
	TotalRenewableCapacity: 200000,
	TotalStoragePower:      100000,
	TotalStorageEnergy:     2000000,
	DefaultLifetime:        40,
	MaxOperationalHours:    1e6,
}

// Resolver turns carrier names into finite capacity bounds by walking a
// fallback chain over an immutable limits table. It never returns an
// infinite or negative value and never fails: unknown carriers degrade to
// defaults, defective table entries are skipped as if absent.
type Resolver struct {
	table *Table
	log   logger.Logger
}

// NewResolver wraps the given table. The table must not be mutated after
// this call.
func NewResolver(t *Table, log logger.Logger) *Resolver {
	if t == nil {
		t = Defaults()
	}
	return &Resolver{table: t, log: log}
}

// Table exposes the underlying limits table, read-only by convention.
func (r *Resolver) Table() *Table { return r.table }

// usable reports whether a table value can serve as a bound. Infinite,
// NaN and negative entries are treated as missing so resolution falls
// through to the next rung.
func usable(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Bound resolves the maximum capacity for a carrier in the given category,
// scaled by multiplier. The chain is: exact carrier match, partial match,
// category default, system-wide proxy, hard fallback. StorageEnergy
// resolution uses the energy sub-table and energy fallback; the System
// category treats the carrier as a limit name and defers to SystemLimit.
func (r *Resolver) Bound(carrier string, cat Category, multiplier float64) float64 {
	switch cat {
	case Line:
		// Zero means the cap was never configured, not a zero-rated line.
		if r.table.LineCap > 0 && usable(r.table.LineCap) {
			observeFallback(rungExact)
			return r.table.LineCap * multiplier
		}
	case Link:
		if r.table.LinkCap > 0 && usable(r.table.LinkCap) {
			observeFallback(rungExact)
			return r.table.LinkCap * multiplier
		}
	case StorageEnergy:
		return r.EnergyBound(carrier) * multiplier
	case System:
		// The carrier is a limit name such as "total_storage_energy".
		return r.SystemLimit(carrier) * multiplier
	case Generator, StoragePower:
		if v, ok := r.carrierBound(carrier, cat); ok {
			return v * multiplier
		}
		if v, ok := r.systemProxy(cat); ok {
			observeFallback(rungSystemProxy)
			return v * multiplier
		}
	}
	observeFallback(rungHard)
	r.log.Warnf("no technical limit found for carrier %q in category %s, using fallback %v MW",
		carrier, cat, float64(hardPowerFallback))
	return hardPowerFallback * multiplier
}

// ExtensionBound resolves the maximum reinforcement capacity for lines
// and links, scaled by multiplier. An unset extension falls back to the
// rating cap of the category, then to the hard fallback.
func (r *Resolver) ExtensionBound(cat Category, multiplier float64) float64 {
	var ext float64
	switch cat {
	case Line:
		ext = r.table.LineExtension
	case Link:
		ext = r.table.LinkExtension
	}
	if ext > 0 && usable(ext) {
		observeFallback(rungExact)
		return ext * multiplier
	}
	return r.Bound("", cat, multiplier)
}

// EnergyBound resolves the maximum energy capacity in MWh for a storage
// carrier, falling back to 50 GWh when nothing matches.
func (r *Resolver) EnergyBound(carrier string) float64 {
	if v, ok := r.carrierBound(carrier, StorageEnergy); ok {
		return v
	}
	observeFallback(rungHard)
	r.log.Warnf("no energy limit found for storage carrier %q, using fallback %v MWh",
		carrier, float64(hardEnergyFallback))
	return hardEnergyFallback
}

// SystemLimit resolves a named aggregate ceiling such as
// "total_storage_energy". Unknown names degrade to a built-in fallback
// table, then to a generic constant.
func (r *Resolver) SystemLimit(name string) float64 {
	if v, ok := r.table.System[name]; ok && usable(v) {
		return v
	}
	if v, ok := systemFallbacks[name]; ok {
		observeFallback(rungSystemProxy)
		return v
	}
	observeFallback(rungHard)
	r.log.Warnf("unknown system limit %q, using fallback %v", name, float64(hardSystemFallback))
	return hardSystemFallback
}

// ValidateBound reports whether a capacity value respects the resolved
// limit for its carrier and category, logging a warning when it does not.
func (r *Resolver) ValidateBound(carrier string, cat Category, value float64) bool {
	limit := r.Bound(carrier, cat, 1)
	if value > limit {
		r.log.Warnf("%s %s: value %v exceeds technical limit %v", cat, carrier, value, limit)
		return false
	}
	return true
}

// carrierBound walks the exact, partial and default rungs of the chain for
// categories with per-carrier sub-tables.
func (r *Resolver) carrierBound(carrier string, cat Category) (float64, bool) {
	m := r.table.carriers(cat)
	if m == nil {
		return 0, false
	}
	if v, ok := m[carrier]; ok && usable(v) {
		observeFallback(rungExact)
		return v, true
	}
	if v, ok := partialMatch(m, carrier); ok {
		observeFallback(rungPartial)
		return v, true
	}
	if v, ok := m[DefaultKey]; ok && usable(v) {
		observeFallback(rungDefault)
		return v, true
	}
	return 0, false
}

// partialMatch finds table keys that prefix the carrier or appear inside
// it, for compound carriers such as "offwind-ac-float". When several keys
// match, the longest wins so the most specific entry is chosen; remaining
// ties break lexicographically. This makes the lookup deterministic
// regardless of map iteration order.
func partialMatch(m map[string]float64, carrier string) (float64, bool) {
	best := ""
	for key, v := range m {
		if key == DefaultKey || !usable(v) {
			continue
		}
		if !strings.HasPrefix(carrier, key) && !strings.Contains(carrier, key) {
			continue
		}
		if len(key) > len(best) || (len(key) == len(best) && key < best) {
			best = key
		}
	}
	if best == "" {
		return 0, false
	}
	return m[best], true
}

// systemProxy derives an emergency per-unit bound from the aggregate
// system ceiling of the category.
func (r *Resolver) systemProxy(cat Category) (float64, bool) {
	var name string
	switch cat {
	case Generator:
		name = TotalRenewableCapacity
	case StoragePower:
		name = TotalStoragePower
	default:
		return 0, false
	}
	if v, ok := r.table.System[name]; ok && usable(v) {
		return v / assumedFleetSize, true
	}
	return 0, false
}
