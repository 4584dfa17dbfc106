package lpextract

import (
	"github.com/polyoa/utvpioa/lp"
	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
	"github.com/polyoa/utvpioa/utvpi"
)

// Extract computes the UTVPI over-approximation of sys via the LP
// oracle directly, instead of Fourier-Motzkin elimination: for every
// UTVPI shape (single variables, then unordered pairs) it maximises
// the shape's linear form over sys, rounds the optimum up to a
// rational with denominator 2^precision, and emits the bound. The
// first infeasible LP call aborts the whole extraction; a shape whose
// objective is unbounded over sys simply contributes no row in that
// direction. Enumeration order is fixed: single variables ascending
// (lower bound, then upper bound), then pairs in lexicographic order
// (x_i - x_j lower/upper, then x_i + x_j lower/upper).
func Extract(sys *polyhedron.System, oracle lp.Oracle, precision uint) (feasible bool, rows []row.Row, err error) {
	if precision == 0 {
		return false, nil, ErrDefaultPrecisionZero
	}

	n := sys.NVars
	constraints := toConstraints(sys.Rows)

	one := rational.FromInt(1)
	negOne := rational.FromInt(-1)

	var out []row.Row

	emit := func(idx []int, coeffs []rational.Rational) (bool, error) {
		objective := make([]float64, n)
		for k, id := range idx {
			objective[id] = coeffs[k].Float64()
		}
		res, err := oracle.Maximise(objective, constraints)
		if err != nil {
			return true, err
		}
		switch res.Status {
		case lp.StatusInfeasible:
			return false, nil
		case lp.StatusUnbounded:
			return true, nil
		default:
			out = append(out, utvpi.EmitBound(n, idx, coeffs, ceilUp(res.Value, precision)))
			return true, nil
		}
	}

	for i := 0; i < n; i++ {
		ok, err := emit([]int{i}, []rational.Rational{negOne})
		if err != nil {
			return false, nil, err
		}
		if !ok {
			return false, nil, nil
		}
		ok, err = emit([]int{i}, []rational.Rational{one})
		if err != nil {
			return false, nil, err
		}
		if !ok {
			return false, nil, nil
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			shapes := [][]rational.Rational{
				{negOne, one}, // lower of x_i - x_j
				{one, negOne}, // upper of x_i - x_j
				{negOne, negOne}, // lower of x_i + x_j
				{one, one}, // upper of x_i + x_j
			}
			for _, coeffs := range shapes {
				ok, err := emit([]int{i, j}, coeffs)
				if err != nil {
					return false, nil, err
				}
				if !ok {
					return false, nil, nil
				}
			}
		}
	}

	return true, out, nil
}

func toConstraints(rows []row.Row) []lp.Constraint {
	out := make([]lp.Constraint, len(rows))
	for i, r := range rows {
		c := make(lp.Constraint, len(r))
		for j, v := range r {
			c[j] = v.Float64()
		}
		out[i] = c
	}
	return out
}
