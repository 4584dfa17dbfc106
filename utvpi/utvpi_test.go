package utvpi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
	"github.com/polyoa/utvpioa/utvpi"
)

func rat(n, d int64) rational.Rational { return rational.NewInt64(n, d) }

func sys1(t *testing.T, rows ...row.Row) *polyhedron.System {
	t.Helper()
	s, err := polyhedron.New([]string{"x0"}, rows)
	require.NoError(t, err)
	return s
}

func TestSimplifySingleVarLowerAndUpper(t *testing.T) {
	// x0 >= 0, x0 <= 2 (i.e. -x0 >= -2).
	s := sys1(t, row.Row{rat(1, 1), rat(0, 1)}, row.Row{rat(-1, 1), rat(-2, 1)})
	feasible, bounds, err := utvpi.SimplifySingleVar(s)
	require.NoError(t, err)
	require.True(t, feasible)
	require.NotNil(t, bounds.PosMax)
	require.NotNil(t, bounds.NegMax)
	assert.True(t, bounds.PosMax.Eq(rat(2, 1)), "PosMax = %s", bounds.PosMax)
	assert.True(t, bounds.NegMax.Eq(rat(0, 1)), "NegMax = %s", bounds.NegMax)
}

func TestSimplifySingleVarTightestOfMultipleCandidates(t *testing.T) {
	// Two lower bounds (x0 >= 0, x0 >= 1) and two upper bounds
	// (x0 <= 5, x0 <= 3): the tightest of each must win, i.e. the
	// minimum upper candidate and the maximum lower candidate.
	s := sys1(t,
		row.Row{rat(1, 1), rat(0, 1)},
		row.Row{rat(1, 1), rat(1, 1)},
		row.Row{rat(-1, 1), rat(-5, 1)},
		row.Row{rat(-1, 1), rat(-3, 1)},
	)
	feasible, bounds, err := utvpi.SimplifySingleVar(s)
	require.NoError(t, err)
	require.True(t, feasible)
	assert.True(t, bounds.PosMax.Eq(rat(3, 1)))
	assert.True(t, bounds.NegMax.Eq(rat(-1, 1)))
}

func TestSimplifySingleVarDirectContradiction(t *testing.T) {
	// 0*x0 >= 5 is never satisfiable.
	s := sys1(t, row.Row{rat(0, 1), rat(5, 1)})
	feasible, bounds, err := utvpi.SimplifySingleVar(s)
	require.NoError(t, err)
	assert.False(t, feasible)
	assert.Equal(t, utvpi.VarBounds{}, bounds)
}

func TestSimplifySingleVarCrossedBoundsContradiction(t *testing.T) {
	// x0 >= 0 and x0 <= -1: no row is individually contradictory, but
	// together they admit no value.
	s := sys1(t, row.Row{rat(1, 1), rat(0, 1)}, row.Row{rat(-1, 1), rat(1, 1)})
	feasible, _, err := utvpi.SimplifySingleVar(s)
	require.NoError(t, err)
	assert.False(t, feasible)
}

func TestSimplifySingleVarTrivialRowIgnored(t *testing.T) {
	// 0*x0 >= -3 carries no information; the remaining row alone fixes bounds.
	s := sys1(t, row.Row{rat(0, 1), rat(-3, 1)}, row.Row{rat(1, 1), rat(0, 1)})
	feasible, bounds, err := utvpi.SimplifySingleVar(s)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Nil(t, bounds.PosMax)
	require.NotNil(t, bounds.NegMax)
	assert.True(t, bounds.NegMax.Eq(rat(0, 1)))
}

func TestSimplifySingleVarUnboundedBothWays(t *testing.T) {
	s := sys1(t, row.Row{rat(0, 1), rat(0, 1)})
	feasible, bounds, err := utvpi.SimplifySingleVar(s)
	require.NoError(t, err)
	assert.True(t, feasible)
	assert.Nil(t, bounds.PosMax)
	assert.Nil(t, bounds.NegMax)
}

func TestSimplifySingleVarPanicsOnWrongArity(t *testing.T) {
	s, err := polyhedron.New([]string{"x0", "x1"}, []row.Row{{rat(1, 1), rat(0, 1), rat(0, 1)}})
	require.NoError(t, err)
	assert.Panics(t, func() { _, _, _ = utvpi.SimplifySingleVar(s) })
}

func TestFindBoundsNonNegativityPairAndSum(t *testing.T) {
	// x0 >= 0, x1 >= 0, x0 + x1 <= 2 (canonical: -x0 - x1 >= -2).
	s, err := polyhedron.New([]string{"x0", "x1"}, []row.Row{
		{rat(1, 1), rat(0, 1), rat(0, 1)},
		{rat(0, 1), rat(1, 1), rat(0, 1)},
		{rat(-1, 1), rat(-1, 1), rat(-2, 1)},
	})
	require.NoError(t, err)

	feasible, rows, err := utvpi.FindBounds(s, 0, 1, 2)
	require.NoError(t, err)
	require.True(t, feasible)

	want := []row.Row{
		{rat(-1, 1), rat(0, 1), rat(-2, 1)},
		{rat(1, 1), rat(0, 1), rat(0, 1)},
		{rat(0, 1), rat(-1, 1), rat(-2, 1)},
		{rat(0, 1), rat(1, 1), rat(0, 1)},
		{rat(-1, 1), rat(-1, 1), rat(-2, 1)},
		{rat(1, 1), rat(1, 1), rat(0, 1)},
		{rat(-1, 1), rat(1, 1), rat(-2, 1)},
		{rat(1, 1), rat(-1, 1), rat(-2, 1)},
	}
	require.Len(t, rows, len(want))
	for i, w := range want {
		for j := range w {
			assert.Truef(t, rows[i][j].Eq(w[j]), "row %d entry %d: got %s want %s", i, j, rows[i][j], w[j])
		}
	}
}

func TestFindBoundsInfeasiblePropagates(t *testing.T) {
	// x0 >= 0, x0 <= -1, x1 unconstrained: the axis-u projection alone
	// is already infeasible.
	s, err := polyhedron.New([]string{"x0", "x1"}, []row.Row{
		{rat(1, 1), rat(0, 1), rat(0, 1)},
		{rat(-1, 1), rat(0, 1), rat(1, 1)},
	})
	require.NoError(t, err)

	feasible, rows, err := utvpi.FindBounds(s, 0, 1, 2)
	require.NoError(t, err)
	assert.False(t, feasible)
	assert.Nil(t, rows)
}

func TestFindBoundsRotatedOnlyBound(t *testing.T) {
	// x0 - x1 >= 0, unbounded in every other direction: only the
	// rotated t-axis negative bound (-x0+x1 <= 0) is finite.
	s, err := polyhedron.New([]string{"x0", "x1"}, []row.Row{
		{rat(1, 1), rat(-1, 1), rat(0, 1)},
	})
	require.NoError(t, err)

	feasible, rows, err := utvpi.FindBounds(s, 0, 1, 2)
	require.NoError(t, err)
	require.True(t, feasible)
	require.Len(t, rows, 1)
	assert.True(t, rows[0][0].Eq(rat(1, 1)))
	assert.True(t, rows[0][1].Eq(rat(-1, 1)))
	assert.True(t, rows[0][2].Eq(rat(0, 1)))
}

func TestFindBoundsPanicsOnWrongArity(t *testing.T) {
	s, err := polyhedron.New([]string{"x0"}, []row.Row{{rat(1, 1), rat(0, 1)}})
	require.NoError(t, err)
	assert.Panics(t, func() { _, _, _ = utvpi.FindBounds(s, 0, 1, 1) })
}
