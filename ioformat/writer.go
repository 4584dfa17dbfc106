package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/polyoa/utvpioa/row"
)

// Write renders the output format. When feasible is false, the single
// line "Infeasible!" is written and rows is ignored; no partial
// header or rows are ever written before it.
// Otherwise a header line lists varLabels followed by "c", then each
// row is printed with the literal inequality-type prefix "1", its
// coefficients as-is, and its constant printed in sign-flipped
// canonical form (a row stores "a.x >= b" internally; the line reads
// "a.x + c >= 0" with c = -b).
func Write(w io.Writer, varLabels []string, feasible bool, rows []row.Row) error {
	bw := bufio.NewWriter(w)

	if !feasible {
		if _, err := fmt.Fprintln(bw, "Infeasible!"); err != nil {
			return err
		}
		return bw.Flush()
	}

	for _, label := range varLabels {
		if _, err := fmt.Fprintf(bw, " %s", label); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(bw, " c"); err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprint(bw, "1"); err != nil {
			return err
		}
		for j := 0; j < len(r)-1; j++ {
			if _, err := fmt.Fprintf(bw, " %s", r[j].String()); err != nil {
				return err
			}
		}
		c := r[len(r)-1].Neg()
		if _, err := fmt.Fprintf(bw, " %s\n", c.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}
