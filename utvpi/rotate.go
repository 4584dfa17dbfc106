package utvpi

import (
	"fmt"

	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
)

// rotate builds the rotated-basis System: for s = u+v, t = u-v, a row
// [a, b, c] meaning a*u + b*v >= c becomes [a+b, a-b, 2c], since
// a*u+b*v >= c is equivalent to (a+b)*s + (a-b)*t >= 2c under that
// change of variables. Must be applied exactly once per 2-variable
// System, standalone from projection — re-applying it would double
// the right-hand side again instead of producing a further rotation.
//
// Panics if sys.NVars != 2.
func rotate(sys *polyhedron.System) *polyhedron.System {
	if sys.NVars != 2 {
		panic(fmt.Sprintf("utvpi.rotate: expected 2 variables, got %d", sys.NVars))
	}
	two := rational.FromInt(2)
	rows := make([]row.Row, len(sys.Rows))
	for i, r := range sys.Rows {
		a, b, c := r[0], r[1], r[2]
		rows[i] = row.Row{a.Add(b), a.Sub(b), c.Mul(two)}
	}
	out, err := polyhedron.New([]string{"s", "t"}, rows)
	if err != nil {
		panic(fmt.Sprintf("utvpi.rotate: %v", err))
	}
	return out
}
