package fm

import (
	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
	"github.com/polyoa/utvpioa/utvpi"
)

// Extractor runs the f/g/h recursive UTVPI extraction over a System,
// optionally filtering redundant rows at every elimination step.
type Extractor struct {
	// RemoveRedundant enables the LP-backed redundancy filter at every
	// projection. Filter must be non-nil when this is true.
	RemoveRedundant bool
	Filter          polyhedron.RedundancyFilter
}

// Extract computes the UTVPI over-approximation of sys: every
// single-variable bound and every pairwise bound reachable through
// the f/g/h recursion, in the recursion's fixed traversal order.
// feasible is false (with rows == nil) the moment any sub-projection
// is found infeasible; no partial rows are returned in that case.
func (e *Extractor) Extract(sys *polyhedron.System) (feasible bool, rows []row.Row, err error) {
	n := sys.NVars
	switch {
	case n == 0:
		return true, nil, nil
	case n == 1:
		ok, bounds, err := utvpi.SimplifySingleVar(sys)
		if err != nil || !ok {
			return ok, nil, err
		}
		return true, singleVarRows(bounds), nil
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return e.f(frame{sys: sys, idx: idx}, n)
}

func singleVarRows(bounds utvpi.VarBounds) []row.Row {
	one := rational.FromInt(1)
	negOne := rational.FromInt(-1)
	var out []row.Row
	if bounds.PosMax != nil {
		out = append(out, utvpi.EmitBound(1, []int{0}, []rational.Rational{one}, *bounds.PosMax))
	}
	if bounds.NegMax != nil {
		out = append(out, utvpi.EmitBound(1, []int{0}, []rational.Rational{negOne}, *bounds.NegMax))
	}
	return out
}

// f handles, for an n-variable frame, every pair that does not involve
// the last variable (by recursing into f with the last variable
// eliminated), every remaining pair that involves the last variable
// (by recursing into g with the second-to-last variable eliminated),
// and the single pair (last, second-to-last) directly (via h).
func (e *Extractor) f(fr frame, nVarsFull int) (bool, []row.Row, error) {
	n := fr.sys.NVars
	if n == 2 {
		return utvpi.FindBounds(fr.sys, fr.idx[0], fr.idx[1], nVarsFull)
	}

	withoutLast, err := removeAt(fr, n-1, e.RemoveRedundant, e.Filter)
	if err != nil {
		return false, nil, err
	}
	feasible, rowsF, err := e.f(withoutLast, nVarsFull)
	if err != nil || !feasible {
		return feasible, nil, err
	}

	withoutSecondLast, err := removeAt(fr, n-2, e.RemoveRedundant, e.Filter)
	if err != nil {
		return false, nil, err
	}
	feasible, rowsG, err := e.g(withoutSecondLast, nVarsFull)
	if err != nil || !feasible {
		return feasible, nil, err
	}

	feasible, rowsH, err := e.h(fr, nVarsFull)
	if err != nil || !feasible {
		return feasible, nil, err
	}

	out := append(rowsF, rowsG...)
	out = append(out, rowsH...)
	return true, out, nil
}

// g handles every pair involving the current frame's last variable:
// it recurses into itself with the second-to-last variable eliminated
// (covering pairs (last, k) for every k strictly below second-to-last)
// and handles (last, second-to-last) directly via h.
func (e *Extractor) g(fr frame, nVarsFull int) (bool, []row.Row, error) {
	n := fr.sys.NVars
	if n == 2 {
		return utvpi.FindBounds(fr.sys, fr.idx[0], fr.idx[1], nVarsFull)
	}

	withoutSecondLast, err := removeAt(fr, n-2, e.RemoveRedundant, e.Filter)
	if err != nil {
		return false, nil, err
	}
	feasible, rowsG, err := e.g(withoutSecondLast, nVarsFull)
	if err != nil || !feasible {
		return feasible, nil, err
	}

	feasible, rowsH, err := e.h(fr, nVarsFull)
	if err != nil || !feasible {
		return feasible, nil, err
	}

	return true, append(rowsG, rowsH...), nil
}

// h telescopes from the left, eliminating variable 0 repeatedly until
// only the frame's last two variables remain, then emits their bounds.
func (e *Extractor) h(fr frame, nVarsFull int) (bool, []row.Row, error) {
	n := fr.sys.NVars
	if n == 2 {
		return utvpi.FindBounds(fr.sys, fr.idx[0], fr.idx[1], nVarsFull)
	}
	next, err := removeAt(fr, 0, e.RemoveRedundant, e.Filter)
	if err != nil {
		return false, nil, err
	}
	return e.h(next, nVarsFull)
}
