package polyhedron

import (
	"fmt"

	"github.com/polyoa/utvpioa/internal/obs"
	"github.com/polyoa/utvpioa/row"
)

// RedundancyFilter drops rows implied by the others in rows, returning a
// (possibly shorter) equivalent slice. Injected by callers rather than
// imported directly, so that this package imports neither redundancy
// nor lp.
type RedundancyFilter func(rows []row.Row) ([]row.Row, error)

// RemoveVar eliminates variable at position k from s by classical
// Fourier-Motzkin elimination:
//
//  1. Rows with a zero coefficient at k carry over with column k excised.
//  2. Every row with a positive coefficient at k is combined with every
//     row with a negative coefficient at k, producing a row whose
//     column-k entry is algebraically zero; that column is then excised.
//  3. Combined rows that are entirely zero (0 >= 0, no information) are
//     dropped.
//
// The iteration order is fixed: outer loop over rows with coef > 0 in
// their existing order, inner loop over rows with coef < 0 in their
// existing order. The result lists the carried-over zero-coefficient
// rows first, then the combinations in this order.
//
// If filter is non-nil and removeRedundant is true, it is applied to the
// result's rows before NLines is fixed.
func (s *System) RemoveVar(k int, removeRedundant bool, filter RedundancyFilter) (*System, error) {
	if k < 0 || k >= s.NVars {
		panic(fmt.Sprintf("polyhedron.RemoveVar: index %d out of range [0,%d)", k, s.NVars))
	}

	labels := make([]string, 0, s.NVars-1)
	labels = append(labels, s.VarLabels[:k]...)
	labels = append(labels, s.VarLabels[k+1:]...)

	var pos, neg []row.Row
	out := make([]row.Row, 0, len(s.Rows))

	for _, r := range s.Rows {
		switch r[k].Sign() {
		case 0:
			out = append(out, row.RemoveAt(r, k))
		case 1:
			pos = append(pos, r)
		default:
			neg = append(neg, r)
		}
	}

	for _, p := range pos {
		cp := p[k]
		for _, q := range neg {
			cq := q[k]
			// combine: (-cq)*p + cp*q eliminates column k exactly, since
			// (-cq)*cp + cp*cq == 0.
			combined := row.LinearCombination(cq.Neg(), p, cp, q)
			if !combined[k].IsZero() {
				panic("polyhedron.RemoveVar: eliminated column is not zero after combination")
			}
			combined = row.RemoveAt(combined, k)
			if row.IsAllZero(combined) {
				continue
			}
			out = append(out, combined)
		}
	}

	if removeRedundant && filter != nil {
		before := len(out)
		filtered, err := filter(out)
		if err != nil {
			return nil, err
		}
		out = filtered
		obs.Log.Trace().Int("before", before).Int("after", len(out)).Msg("polyhedron: redundancy filter applied during projection")
	}

	return &System{Rows: out, VarLabels: labels, NVars: s.NVars - 1}, nil
}
