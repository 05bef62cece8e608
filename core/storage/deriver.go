// Package storage derives the auxiliary linear constraints that encode
// per-technology storage engineering rules: a minimum energy-to-power
// duration and a fixed discharge-to-charge power ratio.
package storage

import (
	"errors"
	"fmt"
	"math"

	"github.com/maelcorre/gridcap/core/model"
)

// ErrMissingVariable reports a storage technology whose policy requires a
// decision variable that was never added to the model. Unlike unknown
// carriers in the bounds resolver, this is a configuration error and is
// surfaced to the caller: silently dropping a physically required
// constraint would let the solver return a solution that cannot be built.
var ErrMissingVariable = errors.New("storage: missing decision variable")

// DeriveConstraints builds the derived constraints for one storage
// technology from its policy and the model variables for charge power,
// discharge power and energy capacity.
//
// With minimum duration D set, it emits E - D*Pc >= 0, keeping the energy
// capacity at or above D hours of full charging. With discharge ratio k
// set, it emits Pd - (k/sqrt(eta))*Pc = 0, where sqrt(eta) is the
// single-leg efficiency obtained by splitting the round-trip losses
// evenly; the ratio applies to delivered power, so the discharge rating
// compensates its own leg's losses. An empty policy yields no
// constraints.
func DeriveConstraints(tech string, charge, discharge, energy model.VarRef, p model.StoragePolicy) ([]model.Constraint, error) {
	if p.Empty() {
		return nil, nil
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("storage policy for %s: %w", tech, err)
	}

	var out []model.Constraint
	if p.MinDurationHours != nil {
		if !charge.Valid() || !energy.Valid() {
			return nil, fmt.Errorf("%w: technology %s needs charge power and energy capacity variables for the minimum duration rule", ErrMissingVariable, tech)
		}
		out = append(out, model.Constraint{
			Name: tech + " min duration",
			Terms: []model.Term{
				{Var: energy, Coeff: 1},
				{Var: charge, Coeff: -*p.MinDurationHours},
			},
			Sense: model.GreaterEqual,
		})
	}
	if p.DischargeChargeRatio != nil {
		if !charge.Valid() || !discharge.Valid() {
			return nil, fmt.Errorf("%w: technology %s needs charge and discharge power variables for the discharge ratio rule", ErrMissingVariable, tech)
		}
		legEff := math.Sqrt(p.RoundTripEfficiency)
		out = append(out, model.Constraint{
			Name: tech + " discharge ratio",
			Terms: []model.Term{
				{Var: discharge, Coeff: 1},
				{Var: charge, Coeff: -*p.DischargeChargeRatio / legEff},
			},
			Sense: model.Equal,
		})
	}
	return out, nil
}
