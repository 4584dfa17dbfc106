package polyhedron

import (
	"fmt"

	"github.com/polyoa/utvpioa/row"
)

// System is { Rows: ordered list of Row; VarLabels: ordered list of
// variable names, length NVars }. Every Row has length NVars+1; all rows
// share the same variable order, identified positionally with VarLabels.
type System struct {
	Rows      []row.Row
	VarLabels []string
	NVars     int
}

// NLines returns the current number of rows.
func (s *System) NLines() int { return len(s.Rows) }

// New constructs a System, validating that every row has length
// nVars+1 and that len(varLabels) == nVars.
func New(varLabels []string, rows []row.Row) (*System, error) {
	nVars := len(varLabels)
	for i, r := range rows {
		if len(r) != nVars+1 {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRowLength, i, len(r), nVars+1)
		}
	}
	labels := make([]string, nVars)
	copy(labels, varLabels)
	rs := make([]row.Row, len(rows))
	for i, r := range rows {
		rs[i] = r.Clone()
	}
	return &System{Rows: rs, VarLabels: labels, NVars: nVars}, nil
}

// Clone returns a System sharing no storage with s.
func (s *System) Clone() *System {
	rs := make([]row.Row, len(s.Rows))
	for i, r := range s.Rows {
		rs[i] = r.Clone()
	}
	labels := make([]string, len(s.VarLabels))
	copy(labels, s.VarLabels)
	return &System{Rows: rs, VarLabels: labels, NVars: s.NVars}
}

// IndexOf returns the position of label within s.VarLabels, or -1.
func (s *System) IndexOf(label string) int {
	for i, l := range s.VarLabels {
		if l == label {
			return i
		}
	}
	return -1
}
