// Package model holds the domain types shared across the planning
// packages: decision-variable references, linear constraints, storage
// policies and technology descriptors.
package model

import "math"

// VarRef references a named decision variable in the optimization model by
// its column index. The zero value is not a valid reference.
type VarRef struct {
	Name string
	Col  int
}

// Valid reports whether the reference points at a real model variable.
func (v VarRef) Valid() bool { return v.Name != "" && v.Col >= 0 }

// Sense is the direction of a linear constraint.
type Sense int

const (
	LessEqual Sense = iota
	Equal
	GreaterEqual
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	default:
		return ">="
	}
}

// Term is a coefficient applied to one decision variable.
type Term struct {
	Var   VarRef
	Coeff float64
}

// Constraint is a linear relation over model variables in affine form:
// sum(Coeff_i * Var_i) Sense RHS. Relations whose right-hand side is a
// scaled variable (e.g. E >= 50*P) are normalized by moving the variable
// onto the left-hand side with a negated coefficient.
type Constraint struct {
	Name  string
	Terms []Term
	Sense Sense
	RHS   float64
}

// Satisfied evaluates the constraint against solved variable values within
// the given tolerance. Variables absent from values count as zero.
func (c Constraint) Satisfied(values map[string]float64, tol float64) bool {
	lhs := 0.0
	for _, t := range c.Terms {
		lhs += t.Coeff * values[t.Var.Name]
	}
	switch c.Sense {
	case LessEqual:
		return lhs <= c.RHS+tol
	case Equal:
		return math.Abs(lhs-c.RHS) <= tol
	default:
		return lhs >= c.RHS-tol
	}
}
