package utvpi

import (
	"fmt"

	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
)

// SimplifySingleVar computes the tightest VarBounds implied by a
// 1-variable System. Each row [a, b] represents a*x >= b; dividing
// through by a (and flipping the inequality when a < 0) gives, in both
// cases, the candidate value b/a:
//
//   - a > 0: contributes the lower bound x >= b/a.
//   - a < 0: contributes the upper bound x <= b/a.
//   - a == 0, b > 0: the row is 0 >= b > 0, a contradiction; infeasible.
//   - a == 0, b <= 0: the row is trivially true; ignored.
//
// The tightest upper bound is the minimum of its candidates; the
// tightest lower bound is the maximum of its candidates (equivalently,
// PosMax and NegMax, which store the upper bound and the negated
// lower bound respectively, are each the minimum of their own per-row
// candidates). If both bounds are present and the upper bound is
// tighter than the lower bound, no value of x satisfies every row and
// the system is infeasible — the single-variable analogue of the
// zero-variable "0 >= positive" contradiction that full elimination
// would otherwise surface one level down.
//
// Panics if sys.NVars != 1: that is a caller contract violation, not a
// data-dependent outcome.
func SimplifySingleVar(sys *polyhedron.System) (feasible bool, bounds VarBounds, err error) {
	if sys.NVars != 1 {
		panic(fmt.Sprintf("utvpi.SimplifySingleVar: expected 1 variable, got %d", sys.NVars))
	}

	var haveUpper, haveLower bool
	var upper, lower rational.Rational // upper = tightest (min) x<=U; lower = tightest (max) x>=L

	for _, r := range sys.Rows {
		a, b := r[0], r[1]
		switch a.Sign() {
		case 0:
			if b.Sign() > 0 {
				return false, VarBounds{}, nil
			}
			// a == 0, b <= 0: trivially true, carries no information.
		case 1:
			cand := b.Div(a)
			if !haveLower || cand.Gt(lower) {
				lower, haveLower = cand, true
			}
		default: // a < 0
			cand := b.Div(a)
			if !haveUpper || cand.Lt(upper) {
				upper, haveUpper = cand, true
			}
		}
	}

	if haveUpper && haveLower && upper.Lt(lower) {
		return false, VarBounds{}, nil
	}

	var vb VarBounds
	if haveUpper {
		u := upper
		vb.PosMax = &u
	}
	if haveLower {
		n := lower.Neg()
		vb.NegMax = &n
	}
	return true, vb, nil
}
