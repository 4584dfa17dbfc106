package fm_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyoa/utvpioa/fm"
	"github.com/polyoa/utvpioa/lp"
	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
)

// randomBoundedSystem builds a feasible-or-not System over nVars variables:
// a box -5 <= x_i <= 5 for every variable (guaranteeing a bounded feasible
// region whenever it is nonempty) plus nExtraRows random small-integer
// half-spaces. Coefficients and right-hand sides are drawn from rng, so a
// fixed-seed rng makes the whole system reproducible.
func randomBoundedSystem(rng *rand.Rand, nVars, nExtraRows int) *polyhedron.System {
	labels := make([]string, nVars)
	for i := range labels {
		labels[i] = fmt.Sprintf("x%d", i)
	}

	var rows []row.Row
	for i := 0; i < nVars; i++ {
		rows = append(rows, boxRow(nVars, i, 1, -5))
		rows = append(rows, boxRow(nVars, i, -1, -5))
	}
	for k := 0; k < nExtraRows; k++ {
		coeffs := make([]int64, nVars)
		nonzero := false
		for i := range coeffs {
			c := int64(rng.Intn(5) - 2) // -2..2
			coeffs[i] = c
			nonzero = nonzero || c != 0
		}
		if !nonzero {
			coeffs[rng.Intn(nVars)] = 1
		}
		rows = append(rows, intRow(coeffs, int64(rng.Intn(7)-3))) // rhs -3..3
	}

	sys, err := polyhedron.New(labels, rows)
	if err != nil {
		panic(err) // rows are built with the right width by construction
	}
	return sys
}

func intRow(coeffs []int64, rhs int64) row.Row {
	r := make(row.Row, len(coeffs)+1)
	for i, c := range coeffs {
		r[i] = rational.FromInt(c)
	}
	r[len(coeffs)] = rational.FromInt(rhs)
	return r
}

func boxRow(nVars, idx int, sign, bound int64) row.Row {
	coeffs := make([]int64, nVars)
	coeffs[idx] = sign
	return intRow(coeffs, bound)
}

func toLPConstraints(rows []row.Row) []lp.Constraint {
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

// TestExtractorSoundnessRandomSystems checks the Soundness property: every
// row Extract emits must be satisfied by every point of the original
// polyhedron. For a row "coeffs.x >= rhs" this holds iff the violation
// rhs - coeffs.x never exceeds zero anywhere in P, which is exactly
// max(-coeffs.x over P) + rhs <= 0 — an LP maximisation over P itself.
func TestExtractorSoundnessRandomSystems(t *testing.T) {
	oracle := lp.NewSimplexOracle()
	rng := rand.New(rand.NewSource(20260730))

	const trials = 25
	checked := 0
	for trial := 0; trial < trials; trial++ {
		nVars := 2 + rng.Intn(2) // 2 or 3 variables
		sys := randomBoundedSystem(rng, nVars, 2+rng.Intn(3))
		constraints := toLPConstraints(sys.Rows)

		feasibleP, err := oracle.Feasible(constraints)
		require.NoError(t, err)
		if !feasibleP {
			continue // nothing to check over an empty polyhedron
		}

		e := &fm.Extractor{}
		feasible, rows, err := e.Extract(sys)
		require.NoError(t, err)
		require.Truef(t, feasible, "trial %d: extractor reported infeasible over a feasible polyhedron", trial)

		for _, r := range rows {
			checked++
			neg := make([]float64, nVars)
			for i := 0; i < nVars; i++ {
				neg[i] = -r[i].Float64()
			}
			rhs := r[nVars].Float64()

			res, err := oracle.Maximise(neg, constraints)
			require.NoError(t, err)
			switch res.Status {
			case lp.StatusInfeasible:
				t.Fatalf("trial %d: P reported infeasible mid-check", trial)
			case lp.StatusUnbounded:
				t.Fatalf("trial %d: row %v unbounded over P, output bound cannot be sound", trial, r)
			default:
				assert.LessOrEqualf(t, rhs+res.Value, 1e-6, "trial %d: row %v violated over P by %v", trial, r, rhs+res.Value)
			}
		}
	}
	require.Greater(t, checked, 0, "no output rows were ever checked; trial parameters need adjusting")
}

// TestExtractorProjectionCorrectRandomSystems extends
// TestExtractorMatchesVanillaFMOA to random systems: the f/g/h recursion
// and the naive pairwise-projection scheme must agree on feasibility and
// on the resulting row set for every random system, not just the one
// hand-built fixture.
func TestExtractorProjectionCorrectRandomSystems(t *testing.T) {
	rng := rand.New(rand.NewSource(20260731))

	const trials = 15
	for trial := 0; trial < trials; trial++ {
		nVars := 3 + rng.Intn(2) // 3 or 4 variables, so f, g and h all do work
		sys := randomBoundedSystem(rng, nVars, 2+rng.Intn(3))

		e := &fm.Extractor{}
		feasible1, rows1, err := e.Extract(sys)
		require.NoError(t, err)

		feasible2, rows2, err := fm.VanillaFMOA(sys, false, nil)
		require.NoError(t, err)

		require.Equalf(t, feasible2, feasible1, "trial %d: feasibility mismatch", trial)
		if feasible1 {
			assert.Equalf(t, sortedKeys(rows2), sortedKeys(rows1), "trial %d: row sets differ", trial)
		}
	}
}
