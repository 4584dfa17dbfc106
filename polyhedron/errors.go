package polyhedron

import "errors"

// Sentinel errors for System construction and projection.
var (
	// ErrRowLength indicates a row's length does not match nVars+1.
	ErrRowLength = errors.New("polyhedron: row length does not match nVars+1")

	// ErrVarLabelCount indicates len(varLabels) != nVars.
	ErrVarLabelCount = errors.New("polyhedron: variable label count mismatch")
)
