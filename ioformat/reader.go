package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/polyoa/utvpioa/polyhedron"
	"github.com/polyoa/utvpioa/rational"
	"github.com/polyoa/utvpioa/row"
)

// tokenizer pulls whitespace-separated tokens off r one at a time,
// regardless of how they are split across lines.
type tokenizer struct {
	sc *bufio.Scanner
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	if !t.sc.Scan() {
		return "", false
	}
	return t.sc.Text(), true
}

func (t *tokenizer) nextInt() (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, tok)
	}
	return n, nil
}

func (t *tokenizer) nextRational() (rational.Rational, error) {
	tok, ok := t.next()
	if !ok {
		return rational.Rational{}, fmt.Errorf("%w: unexpected end of input", ErrMalformedInput)
	}
	v, err := rational.Parse(tok)
	if err != nil {
		return rational.Rational{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return v, nil
}

// Read parses the input format: a header "L N" followed by L rows of
// "t_i a_{i,1} ... a_{i,M} c_i", M = N-2. Each row's type token t_i is
// 0 for an equality (duplicated with every sign negated) or 1 for an
// inequality. Variables are labelled x0..x{M-1}.
func Read(r io.Reader) (*polyhedron.System, error) {
	tk := newTokenizer(r)

	nRows, err := tk.nextInt()
	if err != nil {
		return nil, err
	}
	nTotal, err := tk.nextInt()
	if err != nil {
		return nil, err
	}
	if nTotal < 2 {
		return nil, fmt.Errorf("%w: N = %d must be >= 2", ErrMalformedInput, nTotal)
	}
	nVars := nTotal - 2

	varLabels := make([]string, nVars)
	for i := range varLabels {
		varLabels[i] = fmt.Sprintf("x%d", i)
	}

	var rows []row.Row
	for i := 0; i < nRows; i++ {
		rowType, err := tk.nextInt()
		if err != nil {
			return nil, err
		}
		if rowType != 0 && rowType != 1 {
			return nil, fmt.Errorf("%w: row %d has type %d, want 0 or 1", ErrMalformedInput, i, rowType)
		}

		r := make(row.Row, nVars+1)
		for j := 0; j < nVars; j++ {
			r[j], err = tk.nextRational()
			if err != nil {
				return nil, err
			}
		}
		c, err := tk.nextRational()
		if err != nil {
			return nil, err
		}
		r[nVars] = c.Neg()

		rows = append(rows, r)
		if rowType == 0 {
			rows = append(rows, negateRow(r))
		}
	}

	return polyhedron.New(varLabels, rows)
}

func negateRow(r row.Row) row.Row {
	out := make(row.Row, len(r))
	for i, v := range r {
		out[i] = v.Neg()
	}
	return out
}
