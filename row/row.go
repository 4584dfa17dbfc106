package row

import (
	"fmt"
	"math/big"

	"github.com/polyoa/utvpioa/rational"
)

// Row is one linear inequality "a_1*x_1 + ... + a_n*x_n >= b": entries
// 0..len-2 are coefficients, the last entry is the right-hand side.
type Row []rational.Rational

// Clone returns a shallow copy (Rational values are themselves
// immutable, so this is a full independent copy for Row's purposes).
func (r Row) Clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

// LinearCombination returns a*x + b*y, component-wise, over two Rows of
// equal length: a·x + b·y.
//
// Panics if len(x) != len(y): a length mismatch between two rows of the
// same System is a structural invariant violation, not a recoverable
// condition.
func LinearCombination(a rational.Rational, x Row, b rational.Rational, y Row) Row {
	if len(x) != len(y) {
		panic(fmt.Sprintf("row.LinearCombination: length mismatch %d != %d", len(x), len(y)))
	}
	out := make(Row, len(x))
	for i := range x {
		out[i] = a.Mul(x[i]).Add(b.Mul(y[i]))
	}
	return out
}

// IsAllZero reports whether every entry of r is zero.
func IsAllZero(r Row) bool {
	for _, v := range r {
		if !v.IsZero() {
			return false
		}
	}
	return true
}

// RemoveAt returns a new Row with the entry at index k excised (the row
// shortens by one; this is "column removed", not "coefficient zeroed").
//
// Panics if k is out of range.
func RemoveAt(r Row, k int) Row {
	if k < 0 || k >= len(r) {
		panic(fmt.Sprintf("row.RemoveAt: index %d out of range [0,%d)", k, len(r)))
	}
	out := make(Row, 0, len(r)-1)
	out = append(out, r[:k]...)
	out = append(out, r[k+1:]...)
	return out
}

// ClearDenominators multiplies every entry of r by the lcm of all its
// denominators, producing an equivalent row (same solution set for the
// represented inequality) whose entries are all integer-valued
// Rationals. This is a purely representational optimisation with no
// semantic effect.
func ClearDenominators(r Row) Row {
	if len(r) == 0 {
		return r.Clone()
	}
	lcm := big.NewInt(1)
	for _, v := range r {
		g := new(big.Int).GCD(nil, nil, lcm, v.Den)
		lcm = new(big.Int).Mul(lcm, new(big.Int).Quo(v.Den, g))
	}
	lcmRat := rational.New(lcm, big.NewInt(1))
	out := make(Row, len(r))
	for i, v := range r {
		out[i] = v.Mul(lcmRat)
	}
	return out
}
