package lp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyoa/utvpioa/lp"
)

// randomBoxedConstraints builds a box -4 <= x_i <= 4 for every variable
// (guaranteeing a bounded region, feasible or not) plus extra random
// small-integer half-spaces.
func randomBoxedConstraints(rng *rand.Rand, n, extra int) []lp.Constraint {
	var rows []lp.Constraint
	for i := 0; i < n; i++ {
		rows = append(rows, boxConstraint(n, i, 1, -4))
		rows = append(rows, boxConstraint(n, i, -1, -4))
	}
	for k := 0; k < extra; k++ {
		c := make(lp.Constraint, n+1)
		nonzero := false
		for i := 0; i < n; i++ {
			v := float64(rng.Intn(5) - 2)
			c[i] = v
			nonzero = nonzero || v != 0
		}
		if !nonzero {
			c[rng.Intn(n)] = 1
		}
		c[n] = float64(rng.Intn(5) - 2)
		rows = append(rows, c)
	}
	return rows
}

func boxConstraint(n, idx int, sign, bound float64) lp.Constraint {
	c := make(lp.Constraint, n+1)
	c[idx] = sign
	c[n] = bound
	return c
}

// bruteForceMaximise enumerates every vertex of the region described by
// rows — the intersection of every combination of len(objective) rows
// taken as equalities, kept only when it also satisfies every other row —
// and returns the best objective value among them. This recovers the true
// LP optimum whenever the region is bounded and nonempty, which the boxed
// constraints in this file's generator always guarantee.
func bruteForceMaximise(objective []float64, rows []lp.Constraint) (anyVertex bool, value float64) {
	n := len(objective)
	found := false
	var best float64
	for _, combo := range combinations(len(rows), n) {
		a := make([][]float64, n)
		b := make([]float64, n)
		for i, ri := range combo {
			row := rows[ri]
			a[i] = append([]float64(nil), row[:n]...)
			b[i] = row[n]
		}
		x, ok := solveSquare(a, b)
		if !ok {
			continue
		}
		if !satisfiesAll(x, rows) {
			continue
		}
		v := 0.0
		for i, c := range objective {
			v += c * x[i]
		}
		if !found || v > best {
			best = v
			found = true
		}
	}
	return found, best
}

func satisfiesAll(x []float64, rows []lp.Constraint) bool {
	const tol = 1e-6
	for _, row := range rows {
		sum := 0.0
		for i := range x {
			sum += row[i] * x[i]
		}
		if sum < row[len(x)]-tol {
			return false
		}
	}
	return true
}

// combinations returns every n-element subset of {0,...,m-1}, as index slices.
func combinations(m, n int) [][]int {
	var out [][]int
	var combo []int
	var rec func(start int)
	rec = func(start int) {
		if len(combo) == n {
			out = append(out, append([]int(nil), combo...))
			return
		}
		for i := start; i < m; i++ {
			combo = append(combo, i)
			rec(i + 1)
			combo = combo[:len(combo)-1]
		}
	}
	rec(0)
	return out
}

// solveSquare solves a*x = b via Gaussian elimination with partial
// pivoting, reporting ok == false when a is singular to within tolerance.
func solveSquare(a [][]float64, b []float64) (x []float64, ok bool) {
	n := len(b)
	m := make([][]float64, n)
	for i := range a {
		m[i] = append(append([]float64(nil), a[i]...), b[i])
	}

	const tol = 1e-9
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if absF(m[r][col]) > absF(m[pivot][col]) {
				pivot = r
			}
		}
		if absF(m[pivot][col]) < tol {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := m[r][col] / m[col][col]
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	x = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = m[i][n] / m[i][i]
	}
	return x, true
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TestSimplexOracleMatchesBruteForceVertexEnumeration checks the LP
// oracle's contract directly: on small, bounded random systems,
// SimplexOracle.Feasible/Maximise must agree with brute-force vertex
// enumeration over the same constraints.
func TestSimplexOracleMatchesBruteForceVertexEnumeration(t *testing.T) {
	rng := rand.New(rand.NewSource(20260729))
	oracle := lp.NewSimplexOracle()

	const trials = 20
	checked := 0
	for trial := 0; trial < trials; trial++ {
		n := 1 + rng.Intn(3) // 1..3 variables
		rows := randomBoxedConstraints(rng, n, 1+rng.Intn(3))

		feasible, err := oracle.Feasible(rows)
		require.NoError(t, err)

		objective := make([]float64, n)
		for i := range objective {
			objective[i] = float64(rng.Intn(5) - 2)
		}

		res, err := oracle.Maximise(objective, rows)
		require.NoError(t, err)

		anyVertex, bfValue := bruteForceMaximise(objective, rows)

		if !feasible {
			assert.Equal(t, lp.StatusInfeasible, res.Status)
			assert.Falsef(t, anyVertex, "trial %d: brute force found a vertex of a region SimplexOracle reports infeasible", trial)
			continue
		}

		require.Truef(t, anyVertex, "trial %d: feasible boxed region produced no vertex", trial)
		require.Equalf(t, lp.StatusOptimal, res.Status, "trial %d: a boxed region cannot be unbounded", trial)
		checked++
		assert.InDeltaf(t, bfValue, res.Value, 1e-4, "trial %d: simplex optimum disagrees with brute-force vertex enumeration", trial)
	}
	require.Greater(t, checked, 0, "no feasible trial was ever compared; trial parameters need adjusting")
}
