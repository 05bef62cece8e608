package limits

import "math"

// The sanitizer replaces positive infinity with the max_operational_hours
// system ceiling. Solvers and downstream reporting choke on unbounded
// values, so every externally supplied bound table passes through here.
// All three forms are pure: inputs are never mutated.

// SanitizeValue returns v with positive infinity replaced by the system
// ceiling. Finite values pass through unchanged.
func (r *Resolver) SanitizeValue(v float64) float64 {
	if math.IsInf(v, 1) {
		ceiling := r.SystemLimit(MaxOperationalHours)
		sanitizedBounds.Inc()
		r.log.Infof("replaced 1 infinite value with %v", ceiling)
		return ceiling
	}
	return v
}

// SanitizeSlice returns a copy of vs with every positive infinity replaced
// by the system ceiling. An all-finite slice is copied verbatim.
func (r *Resolver) SanitizeSlice(vs []float64) []float64 {
	if vs == nil {
		return nil
	}
	out := make([]float64, len(vs))
	replaced := 0
	ceiling := 0.0
	for i, v := range vs {
		if math.IsInf(v, 1) {
			if replaced == 0 {
				ceiling = r.SystemLimit(MaxOperationalHours)
			}
			out[i] = ceiling
			replaced++
			continue
		}
		out[i] = v
	}
	if replaced > 0 {
		sanitizedBounds.Add(float64(replaced))
		r.log.Infof("replaced %d infinite values with %v", replaced, ceiling)
	}
	return out
}

// SanitizeMap returns a copy of m with every positive infinity replaced by
// the system ceiling, keyed identically to the input.
func (r *Resolver) SanitizeMap(m map[string]float64) map[string]float64 {
	if m == nil {
		return nil
	}
	out := make(map[string]float64, len(m))
	replaced := 0
	ceiling := 0.0
	for k, v := range m {
		if math.IsInf(v, 1) {
			if replaced == 0 {
				ceiling = r.SystemLimit(MaxOperationalHours)
			}
			out[k] = ceiling
			replaced++
			continue
		}
		out[k] = v
	}
	if replaced > 0 {
		sanitizedBounds.Add(float64(replaced))
		r.log.Infof("replaced %d infinite values with %v", replaced, ceiling)
	}
	return out
}
