package utvpi

import (
	"fmt"

	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
)

// FindBounds takes a 2-variable System sys over local positions (0, 1)
// whose original indices in the full variable set are (iu, iv), and
// produces up to eight UTVPI inequalities, each expressed as a System
// row of length nVarsFull+1 in the "a*x >= b" canonical form — the
// sign flip that prints "+c" in the output format happens at the
// ioformat boundary, not here.
//
// Enumeration order (tie-breaking for duplicate bounds follows this
// fixed order): axis-u (+, -), axis-v (+, -), rotated s = u+v (+, -),
// rotated t = u-v (+, -).
//
// Panics if sys.NVars != 2. Returns feasible == false (with a nil rows
// slice) if any of the four underlying 1-variable systems is
// infeasible, since an infeasible projection makes the whole
// over-approximation infeasible.
func FindBounds(sys *polyhedron.System, iu, iv, nVarsFull int) (feasible bool, rows []row.Row, err error) {
	if sys.NVars != 2 {
		panic(fmt.Sprintf("utvpi.FindBounds: expected 2 variables, got %d", sys.NVars))
	}

	one := rational.FromInt(1)
	negOne := rational.FromInt(-1)

	var out []row.Row

	// 1. Axis-aligned on u: project out v (column 1).
	axisU, err := sys.RemoveVar(1, false, nil)
	if err != nil {
		return false, nil, err
	}
	okU, boundsU, err := SimplifySingleVar(axisU)
	if err != nil {
		return false, nil, err
	}
	if !okU {
		return false, nil, nil
	}
	if boundsU.PosMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iu}, []rational.Rational{one}, *boundsU.PosMax))
	}
	if boundsU.NegMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iu}, []rational.Rational{negOne}, *boundsU.NegMax))
	}

	// 2. Axis-aligned on v: project out u (column 0).
	axisV, err := sys.RemoveVar(0, false, nil)
	if err != nil {
		return false, nil, err
	}
	okV, boundsV, err := SimplifySingleVar(axisV)
	if err != nil {
		return false, nil, err
	}
	if !okV {
		return false, nil, nil
	}
	if boundsV.PosMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iv}, []rational.Rational{one}, *boundsV.PosMax))
	}
	if boundsV.NegMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iv}, []rational.Rational{negOne}, *boundsV.NegMax))
	}

	// 3. Rotated basis: s = u+v, t = u-v.
	rotated := rotate(sys)

	sSys, err := rotated.RemoveVar(1, false, nil) // project out t
	if err != nil {
		return false, nil, err
	}
	okS, boundsS, err := SimplifySingleVar(sSys)
	if err != nil {
		return false, nil, err
	}
	if !okS {
		return false, nil, nil
	}
	if boundsS.PosMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iu, iv}, []rational.Rational{one, one}, *boundsS.PosMax))
	}
	if boundsS.NegMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iu, iv}, []rational.Rational{negOne, negOne}, *boundsS.NegMax))
	}

	tSys, err := rotated.RemoveVar(0, false, nil) // project out s
	if err != nil {
		return false, nil, err
	}
	okT, boundsT, err := SimplifySingleVar(tSys)
	if err != nil {
		return false, nil, err
	}
	if !okT {
		return false, nil, nil
	}
	if boundsT.PosMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iu, iv}, []rational.Rational{one, negOne}, *boundsT.PosMax))
	}
	if boundsT.NegMax != nil {
		out = append(out, EmitBound(nVarsFull, []int{iu, iv}, []rational.Rational{negOne, one}, *boundsT.NegMax))
	}

	return true, out, nil
}

// EmitBound builds a canonical "a*x >= b" row for the UTVPI constraint
// "coeffs . x[idx] <= value" (coeffs given at the listed full-system
// indices, zero elsewhere): since c.x <= value <=> -c.x >= -value, the
// row's coefficients are the negation of coeffs and its right-hand side
// is -value.
func EmitBound(nVarsFull int, idx []int, coeffs []rational.Rational, value rational.Rational) row.Row {
	r := make(row.Row, nVarsFull+1)
	zero := rational.Zero()
	for i := range r {
		r[i] = zero
	}
	for k, id := range idx {
		r[id] = coeffs[k].Neg()
	}
	r[nVarsFull] = value.Neg()
	return r
}
