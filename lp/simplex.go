package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SimplexOracle is a two-phase tableau simplex implementation of
// Oracle. Variables are unrestricted in sign (this package's domain is
// an arbitrary rational polyhedron, not a standard-form LP), so each
// variable x_j is internally represented as u_j - v_j with u_j, v_j >= 0,
// and each >= constraint gets a nonnegative surplus variable, following
// the classical reduction to standard form used by
// other_examples/1681843c_thinkeridea-optimize__convex-lp-simplex.go.go.
type SimplexOracle struct {
	// Tol is the numerical tolerance for zero comparisons during pivoting.
	Tol float64
	// MaxIterations bounds each phase; exceeding it is reported as ErrSingular.
	MaxIterations int
}

// NewSimplexOracle returns a SimplexOracle with sensible defaults.
func NewSimplexOracle() *SimplexOracle {
	return &SimplexOracle{Tol: 1e-9, MaxIterations: 10000}
}

func (o *SimplexOracle) tol() float64 {
	if o.Tol > 0 {
		return o.Tol
	}
	return 1e-9
}

func (o *SimplexOracle) maxIter() int {
	if o.MaxIterations > 0 {
		return o.MaxIterations
	}
	return 10000
}

// Feasible reports whether the constraint set rows admits any solution.
func (o *SimplexOracle) Feasible(rows []Constraint) (bool, error) {
	if len(rows) == 0 {
		return true, nil
	}
	n := len(rows[0]) - 1
	_, _, infeasible, err := o.solve(make([]float64, n), rows, false)
	if err != nil {
		return false, err
	}
	return !infeasible, nil
}

// Maximise computes max(objective . x) subject to rows.
func (o *SimplexOracle) Maximise(objective []float64, rows []Constraint) (Result, error) {
	if len(rows) == 0 {
		return Result{}, fmt.Errorf("%w: no constraints given", ErrDimensionMismatch)
	}
	n := len(rows[0]) - 1
	if len(objective) != n {
		return Result{}, fmt.Errorf("%w: objective has %d entries, constraints imply %d", ErrDimensionMismatch, len(objective), n)
	}
	value, unbounded, infeasible, err := o.solve(objective, rows, true)
	if err != nil {
		return Result{}, err
	}
	if infeasible {
		return Result{Status: StatusInfeasible}, nil
	}
	if unbounded {
		return Result{Status: StatusUnbounded}, nil
	}
	return Result{Status: StatusOptimal, Value: value}, nil
}

// solve runs phase 1 (and, if optimize, phase 2) of the two-phase
// simplex method. It returns the optimal value (meaningful only when
// optimize is true and neither unbounded nor infeasible), and the
// unbounded/infeasible flags.
func (o *SimplexOracle) solve(objective []float64, rows []Constraint, optimize bool) (value float64, unbounded, infeasible bool, err error) {
	n := len(rows[0]) - 1
	m := len(rows)
	for _, r := range rows {
		if len(r) != n+1 {
			return 0, false, false, fmt.Errorf("%w: inconsistent row lengths", ErrDimensionMismatch)
		}
	}

	// Column layout: [u_0..u_{n-1}] [v_0..v_{n-1}] [s_0..s_{m-1}] [a_0..a_{m-1}]
	uOff, vOff, sOff, aOff := 0, n, 2*n, 2*n+m
	numCols := 2*n + 2*m
	tab := mat.NewDense(m+1, numCols+1, nil)
	basis := make([]int, m)

	for i, r := range rows {
		sign := 1.0
		b := r[n]
		if b < 0 {
			sign = -1.0
			b = -b
		}
		for j := 0; j < n; j++ {
			tab.Set(i, uOff+j, sign*r[j])
			tab.Set(i, vOff+j, -sign*r[j])
		}
		tab.Set(i, sOff+i, -sign)
		tab.Set(i, aOff+i, 1)
		tab.Set(i, numCols, b)
		basis[i] = aOff + i
	}

	// Phase 1 objective: maximise -sum(a_i), i.e. drive the artificial
	// variables to zero. objRow[j] holds -c_j so that a negative entry
	// marks an improving column (spec-independent standard convention).
	objRow := rowView(tab, m)
	for i := aOff; i < aOff+m; i++ {
		objRow.set(i, 1) // -c_j with c_j == -1 for artificial columns
	}
	canonicalize(tab, basis, m)

	if err := o.run(tab, basis, m, 0, numCols); err != nil {
		return 0, false, false, err
	}

	if math.Abs(tab.At(m, numCols)) > 1e-6 {
		return 0, false, true, nil
	}

	if !optimize {
		return 0, false, false, nil
	}

	// Pivot out any artificial variable left in the basis at value ~0,
	// onto any structural/slack column with a nonzero entry in its row;
	// if none exists the row is entirely redundant and is left as is.
	for i := 0; i < m; i++ {
		if basis[i] < aOff {
			continue
		}
		for j := 0; j < aOff; j++ {
			if math.Abs(tab.At(i, j)) > o.tol() {
				pivot(tab, i, j, o.tol())
				basis[i] = j
				break
			}
		}
	}

	// Phase 2 objective: maximise sum(objective_j * x_j) = sum(objective_j*(u_j - v_j)).
	objRow2 := rowView(tab, m)
	objRow2.zero()
	for j := 0; j < n; j++ {
		objRow2.set(uOff+j, -objective[j])
		objRow2.set(vOff+j, objective[j])
	}
	tab.Set(m, numCols, 0)
	canonicalize(tab, basis, m)

	if err := o.run(tab, basis, m, 0, aOff); err != nil {
		if err == errUnbounded {
			return 0, true, false, nil
		}
		return 0, false, false, err
	}

	return tab.At(m, numCols), false, false, nil
}

var errUnbounded = fmt.Errorf("lp: internal unbounded sentinel")

// run executes the simplex loop, restricting the entering column search
// to [colLo, colHi), until no improving column remains (optimal) or an
// unbounded ray is detected.
func (o *SimplexOracle) run(tab *mat.Dense, basis []int, m, colLo, colHi int) error {
	tol := o.tol()
	rows, cols := tab.Dims()
	rhsCol := cols - 1
	for iter := 0; iter < o.maxIter(); iter++ {
		enter := -1
		for j := colLo; j < colHi; j++ {
			if tab.At(rows-1, j) < -tol {
				enter = j
				break // Bland's rule: first eligible index, avoids cycling
			}
		}
		if enter == -1 {
			return nil
		}

		leave := -1
		best := math.Inf(1)
		for i := 0; i < m; i++ {
			c := tab.At(i, enter)
			if c <= tol {
				continue
			}
			ratio := tab.At(i, rhsCol) / c
			if ratio < best-tol || (math.Abs(ratio-best) <= tol && (leave == -1 || basis[i] < basis[leave])) {
				best = ratio
				leave = i
			}
		}
		if leave == -1 {
			return errUnbounded
		}
		if err := pivot(tab, leave, enter, tol); err != nil {
			return err
		}
		basis[leave] = enter
	}
	return ErrSingular
}

// pivot performs Gauss-Jordan elimination making column col an identity
// column with a 1 in row r.
func pivot(tab *mat.Dense, r, col int, tol float64) error {
	rows, cols := tab.Dims()
	pv := tab.At(r, col)
	if math.Abs(pv) < tol {
		return ErrSingular
	}
	for j := 0; j < cols; j++ {
		tab.Set(r, j, tab.At(r, j)/pv)
	}
	for i := 0; i < rows; i++ {
		if i == r {
			continue
		}
		factor := tab.At(i, col)
		if factor == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			tab.Set(i, j, tab.At(i, j)-factor*tab.At(r, j))
		}
	}
	return nil
}

// canonicalize zeroes the objective row's entries at every basic
// column by subtracting the appropriate multiple of that column's row,
// so the objective row reflects reduced costs consistent with basis.
func canonicalize(tab *mat.Dense, basis []int, m int) {
	_, cols := tab.Dims()
	for i := 0; i < m; i++ {
		coeff := tab.At(m, basis[i])
		if coeff == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			tab.Set(m, j, tab.At(m, j)-coeff*tab.At(i, j))
		}
	}
}

// objRowHandle is a tiny convenience wrapper to set/clear the objective row.
type objRowHandle struct {
	tab *mat.Dense
	row int
}

func rowView(tab *mat.Dense, row int) objRowHandle { return objRowHandle{tab: tab, row: row} }

func (h objRowHandle) set(col int, v float64) { h.tab.Set(h.row, col, v) }

func (h objRowHandle) zero() {
	_, cols := h.tab.Dims()
	for j := 0; j < cols; j++ {
		h.tab.Set(h.row, j, 0)
	}
}
