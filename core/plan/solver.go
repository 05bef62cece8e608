package plan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/maelcorre/gridcap/core/model"
)

// ErrInfeasible indicates the expansion problem has no feasible solution
// under the configured bounds and derived constraints.
var ErrInfeasible = errors.New("plan infeasible")

// Result holds the solved capacities of one optimization run.
type Result struct {
	RunID     string
	Scenario  string
	Objective float64
	// Capacities maps each decision variable to its built capacity.
	Capacities map[string]float64
	SolvedAt   time.Time
	Duration   time.Duration
}

// solveLP runs the simplex algorithm on the assembled general-form LP.
// a stays a nil interface when the model has no equality rows.
func solveLP(c []float64, g *mat.Dense, h []float64, a mat.Matrix, b []float64) ([]float64, error) {
	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)
	_, sol, err := lp.Simplex(cStd, aStd, bStd, 1e-7, nil)
	return sol, err
}

// lpSolve points to the function used to solve the LP. It can be
// overridden in tests to simulate solver failures.
var lpSolve = solveLP

// Solve assembles the LP and returns the optimal capacities. Inequality
// rows carry the variable bounds and any <= / >= constraints; equality
// constraints, including demand coverage, form the equality block.
func (m *Model) Solve(ctx context.Context, scenario string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := len(m.vars)
	if n == 0 {
		return nil, errors.New("model has no variables")
	}
	start := time.Now()

	c := make([]float64, n)
	for i, v := range m.vars {
		c[i] = v.cost
	}

	var ineqRows, eqRows []model.Constraint
	for _, con := range m.cons {
		if con.Sense == model.Equal {
			eqRows = append(eqRows, con)
		} else {
			ineqRows = append(ineqRows, con)
		}
	}

	// Bounds: x_i <= upper_i and -x_i <= 0 per variable.
	nIneq := 2*n + len(ineqRows)
	g := mat.NewDense(nIneq, n, nil)
	h := make([]float64, nIneq)
	for i, v := range m.vars {
		g.Set(i, i, 1)
		h[i] = v.upper
		g.Set(n+i, i, -1)
	}
	for r, con := range ineqRows {
		row := 2*n + r
		sign := 1.0
		if con.Sense == model.GreaterEqual {
			sign = -1
		}
		for _, t := range con.Terms {
			g.Set(row, t.Var.Col, sign*t.Coeff)
		}
		h[row] = sign * con.RHS
	}

	var a mat.Matrix
	var b []float64
	if len(eqRows) > 0 {
		eq := mat.NewDense(len(eqRows), n, nil)
		b = make([]float64, len(eqRows))
		for r, con := range eqRows {
			for _, t := range con.Terms {
				eq.Set(r, t.Var.Col, t.Coeff)
			}
			b[r] = con.RHS
		}
		a = eq
	}

	sol, err := lpSolve(c, g, h, a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
	}

	res := &Result{
		RunID:      uuid.NewString(),
		Scenario:   scenario,
		Capacities: make(map[string]float64, n),
		SolvedAt:   time.Now(),
		Duration:   time.Since(start),
	}
	for i, v := range m.vars {
		x := sol[i]
		if x < 0 {
			x = 0
		}
		if x > v.upper {
			x = v.upper
		}
		res.Capacities[v.name] = x
		res.Objective += v.cost * x
	}
	return res, nil
}
