package plan

import (
	"fmt"

	"github.com/maelcorre/gridcap/core/limits"
	"github.com/maelcorre/gridcap/core/logger"
	"github.com/maelcorre/gridcap/core/model"
	"github.com/maelcorre/gridcap/core/storage"
)

// Scenario describes one expansion problem: a firm demand level and the
// candidate technologies allowed to meet it.
type Scenario struct {
	Name       string
	DemandMW   float64
	Generators []model.GeneratorTech
	Storage    []model.StorageTech
}

// Component variable name suffixes, following the bus naming of the
// network model ("X charger", "X discharger", "X store").
const (
	chargerSuffix    = " charger"
	dischargerSuffix = " discharger"
	storeSuffix      = " store"
)

// Build assembles the expansion model for a scenario. Every variable is
// bounded by the resolver (sanitized, so an unbounded table entry can
// never reach the solver) and each storage technology contributes its
// policy-derived constraints. A missing policy variable aborts the build.
func Build(sc Scenario, res *limits.Resolver, log logger.Logger) (*Model, error) {
	if sc.DemandMW <= 0 {
		return nil, fmt.Errorf("scenario %q: demand must be positive, got %v", sc.Name, sc.DemandMW)
	}
	m := NewModel()
	demand := model.Constraint{Name: "demand coverage", Sense: model.Equal, RHS: sc.DemandMW}

	for _, g := range sc.Generators {
		upper := res.SanitizeValue(res.Bound(g.Carrier, limits.Generator, 1))
		ref, err := m.AddVariable(g.Carrier, g.CapitalCost, upper)
		if err != nil {
			return nil, err
		}
		avail := g.Availability
		if avail == 0 {
			avail = 1
		}
		demand.Terms = append(demand.Terms, model.Term{Var: ref, Coeff: avail})
		log.Debugw("generator added", map[string]any{"carrier": g.Carrier, "bound_mw": upper})
	}

	for _, s := range sc.Storage {
		powerBound := res.SanitizeValue(res.Bound(s.Carrier, limits.StoragePower, 1))
		energyBound := res.SanitizeValue(res.EnergyBound(s.Carrier))

		charge, err := m.AddVariable(s.Carrier+chargerSuffix, s.PowerCost, powerBound)
		if err != nil {
			return nil, err
		}
		discharge, err := m.AddVariable(s.Carrier+dischargerSuffix, 0, powerBound)
		if err != nil {
			return nil, err
		}
		energy, err := m.AddVariable(s.Carrier+storeSuffix, s.EnergyCost, energyBound)
		if err != nil {
			return nil, err
		}

		cons, err := storage.DeriveConstraints(s.Carrier, charge, discharge, energy, s.Policy)
		if err != nil {
			return nil, err
		}
		for _, c := range cons {
			m.AddConstraint(c)
		}

		contrib := s.Contribution
		if contrib == 0 {
			contrib = 1
		}
		demand.Terms = append(demand.Terms, model.Term{Var: discharge, Coeff: contrib})
		log.Debugw("storage added", map[string]any{
			"carrier":          s.Carrier,
			"power_bound_mw":   powerBound,
			"energy_bound_mwh": energyBound,
			"constraints":      len(cons),
		})
	}

	if len(demand.Terms) == 0 {
		return nil, fmt.Errorf("scenario %q has no technologies", sc.Name)
	}
	m.AddConstraint(demand)
	return m, nil
}
