package lp

import "errors"

var (
	// ErrInfeasible indicates no point satisfies the given constraints.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded indicates the objective is unbounded over the feasible region.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrSingular indicates the simplex tableau degenerated into a
	// singular pivot; callers treat this as a contract violation rather
	// than a recoverable outcome.
	ErrSingular = errors.New("lp: singular pivot, numerical failure")

	// ErrDimensionMismatch indicates the objective length does not
	// match the number of variables implied by the constraint rows.
	ErrDimensionMismatch = errors.New("lp: objective/constraint dimension mismatch")
)
