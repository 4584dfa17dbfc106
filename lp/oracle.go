package lp

// Constraint is one row a_1*x_1 + ... + a_n*x_n >= b: coefficients in
// positions 0..n-1, the right-hand side in the final position. This
// mirrors row.Row's layout but in float64, since the oracle boundary is
// where exact rationals are deliberately given up.
type Constraint []float64

// Status is the outcome of a Maximise call.
type Status int

const (
	// StatusOptimal means Value holds the finite optimum.
	StatusOptimal Status = iota
	// StatusUnbounded means the objective grows without bound over the feasible region.
	StatusUnbounded
	// StatusInfeasible means no point satisfies the constraints.
	StatusInfeasible
)

// Result is the outcome of Maximise.
type Result struct {
	Status Status
	Value  float64
}

// Oracle is the abstract linear-programming facility: a feasibility
// test and optimisation of a linear objective subject to a set of >=
// constraints. Implementations own their numerical policy;
// gonum.org/v1/gonum/mat-backed SimplexOracle is the one provided here,
// but callers (redundancy.Filter, lpextract) depend only on this
// interface so another exact or floating-point backend can be
// substituted without touching them.
type Oracle interface {
	// Feasible reports whether there exists x satisfying every row in rows.
	Feasible(rows []Constraint) (bool, error)

	// Maximise computes max(objective . x) subject to rows. objective
	// must have the same variable count as every row's coefficient
	// prefix (len(row)-1).
	Maximise(objective []float64, rows []Constraint) (Result, error)
}
