package redundancy

import (
	"github.com/polyoa/utvpioa/internal/obs"
	"github.com/polyoa/utvpioa/lp"
	"github.com/polyoa/utvpioa/row"
)

// New returns a redundancy filter backed by oracle. The returned
// function's signature matches polyhedron.RedundancyFilter exactly, so
// it can be passed directly to System.RemoveVar without this package
// importing polyhedron.
//
// For each row i (in index order): test feasibility of every other row
// unchanged, plus row i's sign flipped. If no point can violate row i
// while satisfying the rest, row i adds nothing the rest doesn't
// already force, so it's implied and dropped; the scan index does not
// advance after a deletion, since the row now at position i has not
// yet been examined.
func New(oracle lp.Oracle) func(rows []row.Row) ([]row.Row, error) {
	return func(rows []row.Row) ([]row.Row, error) {
		out := make([]row.Row, len(rows))
		copy(out, rows)

		for i := 0; i < len(out); {
			relaxed := make([]lp.Constraint, 0, len(out))
			for j, r := range out {
				if j == i {
					continue
				}
				relaxed = append(relaxed, toConstraint(r))
			}
			relaxed = append(relaxed, toConstraint(negate(out[i])))

			feasible, err := oracle.Feasible(relaxed)
			if err != nil {
				return nil, err
			}
			if feasible {
				i++
				continue
			}
			obs.Log.Trace().Int("row", i).Int("remaining", len(out)-1).Msg("redundancy: dropping implied row")
			out = append(out[:i], out[i+1:]...)
		}

		return out, nil
	}
}

func toConstraint(r row.Row) lp.Constraint {
	c := make(lp.Constraint, len(r))
	for i, v := range r {
		c[i] = v.Float64()
	}
	return c
}

func negate(r row.Row) row.Row {
	out := make(row.Row, len(r))
	for i, v := range r {
		out[i] = v.Neg()
	}
	return out
}
