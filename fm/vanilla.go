package fm

import (
	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/row"
	"github.com/polyoa/utvpioa/utvpi"
)

// VanillaFMOA computes the same UTVPI over-approximation as
// Extractor.Extract by brute force: for every unordered pair (i, j) of
// original variable indices it eliminates every other variable one at
// a time, then calls utvpi.FindBounds directly. It performs the
// redundant work the f/g/h scheme is designed to avoid, and exists
// purely as an equivalence oracle for tests.
func VanillaFMOA(sys *polyhedron.System, removeRedundant bool, filter polyhedron.RedundancyFilter) (bool, []row.Row, error) {
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

	var out []row.Row
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pair, err := projectOntoPair(sys, i, j, removeRedundant, filter)
			if err != nil {
				return false, nil, err
			}
			feasible, rows, err := utvpi.FindBounds(pair, i, j, n)
			if err != nil {
				return false, nil, err
			}
			if !feasible {
				return false, nil, nil
			}
			out = append(out, rows...)
		}
	}
	return true, out, nil
}

// projectOntoPair eliminates every variable of sys except the two at
// original indices i and j, one at a time from the highest surviving
// position downward, returning a 2-variable System with i, j as
// local columns (0, 1) respectively.
func projectOntoPair(sys *polyhedron.System, i, j int, removeRedundant bool, filter polyhedron.RedundancyFilter) (*polyhedron.System, error) {
	fr := frame{sys: sys, idx: make([]int, sys.NVars)}
	for k := range fr.idx {
		fr.idx[k] = k
	}

	for pos := len(fr.idx) - 1; pos >= 0; pos-- {
		if fr.idx[pos] == i || fr.idx[pos] == j {
			continue
		}
		next, err := removeAt(fr, pos, removeRedundant, filter)
		if err != nil {
			return nil, err
		}
		fr = next
	}
	return fr.sys, nil
}
