package model

import "fmt"

// StoragePolicy captures the engineering requirements of a storage
// technology that go beyond simple capacity bounds. Both rule fields are
// optional; a policy with neither set imposes nothing.
type StoragePolicy struct {
	// MinDurationHours, when set, forces the energy capacity to cover at
	// least this many hours of full charging power. Long-duration
	// technologies (iron-air, H2) are otherwise built with token energy
	// capacity when only marginal cost drives the optimum.
	MinDurationHours *float64 `json:"min_duration_hours"`
	// DischargeChargeRatio, when set, fixes the discharge power rating as
	// this fraction of the charge rating. The discharge train is
	// physically sized with the charge train and is not a free decision.
	DischargeChargeRatio *float64 `json:"discharge_charge_ratio"`
	// RoundTripEfficiency is the AC-to-AC fraction recovered over a full
	// cycle, split evenly between the charge and discharge legs.
	RoundTripEfficiency float64 `json:"round_trip_efficiency"`
}

// SetDefaults applies sane defaults.
func (p *StoragePolicy) SetDefaults() {
	if p.RoundTripEfficiency == 0 {
		p.RoundTripEfficiency = 1
	}
}

// Validate checks field ranges.
func (p StoragePolicy) Validate() error {
	if p.RoundTripEfficiency <= 0 || p.RoundTripEfficiency > 1 {
		return fmt.Errorf("round_trip_efficiency %v outside (0, 1]", p.RoundTripEfficiency)
	}
	if p.MinDurationHours != nil && *p.MinDurationHours <= 0 {
		return fmt.Errorf("min_duration_hours %v must be positive", *p.MinDurationHours)
	}
	if p.DischargeChargeRatio != nil && *p.DischargeChargeRatio <= 0 {
		return fmt.Errorf("discharge_charge_ratio %v must be positive", *p.DischargeChargeRatio)
	}
	return nil
}

// Empty reports whether the policy imposes no derived constraints.
func (p StoragePolicy) Empty() bool {
	return p.MinDurationHours == nil && p.DischargeChargeRatio == nil
}
