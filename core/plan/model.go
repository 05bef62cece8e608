// Package plan assembles and solves the least-cost capacity-expansion
// linear program. Variable upper bounds come from the limits resolver and
// storage engineering rules enter as derived constraints before solving.
package plan

import (
	"fmt"

	"github.com/maelcorre/gridcap/core/model"
)

type variable struct {
	name  string
	cost  float64
	upper float64
}

// Model is a linear capacity-expansion problem under construction:
// one non-negative, upper-bounded decision variable per technology
// component plus arbitrary extra linear constraints.
type Model struct {
	vars  []variable
	index map[string]int
	cons  []model.Constraint
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{index: make(map[string]int)}
}

// AddVariable registers a decision variable with its annualized cost and
// finite upper bound, returning a reference usable in constraints.
func (m *Model) AddVariable(name string, cost, upper float64) (model.VarRef, error) {
	if _, ok := m.index[name]; ok {
		return model.VarRef{}, fmt.Errorf("variable %q already defined", name)
	}
	m.index[name] = len(m.vars)
	m.vars = append(m.vars, variable{name: name, cost: cost, upper: upper})
	return model.VarRef{Name: name, Col: m.index[name]}, nil
}

// Var looks up a previously added variable by name.
func (m *Model) Var(name string) (model.VarRef, bool) {
	i, ok := m.index[name]
	if !ok {
		return model.VarRef{}, false
	}
	return model.VarRef{Name: name, Col: i}, true
}

// AddConstraint appends an extra linear constraint to the model.
func (m *Model) AddConstraint(c model.Constraint) {
	m.cons = append(m.cons, c)
}

// Constraints returns the extra constraints added so far.
func (m *Model) Constraints() []model.Constraint { return m.cons }

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int { return len(m.vars) }
