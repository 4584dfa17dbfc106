package rational

import (
	"fmt"
	"math/big"
	"strings"
)

// Rational is an exact fraction numerator/denominator over arbitrary
// precision integers.
//
// Invariants (always hold on every value returned by this package):
//   - Den > 0
//   - gcd(|Num|, Den) == 1
//   - if Num == 0 then Den == 1
//
// The zero value of Rational is NOT a valid Rational (Den is nil); always
// construct via New, FromInt, or Parse.
type Rational struct {
	Num *big.Int
	Den *big.Int
}

// Zero is the canonical 0/1.
func Zero() Rational { return Rational{Num: big.NewInt(0), Den: big.NewInt(1)} }

// FromInt returns the Rational n/1.
func FromInt(n int64) Rational {
	return Rational{Num: big.NewInt(n), Den: big.NewInt(1)}
}

// New constructs a Rational from a numerator and denominator, normalizing
// to lowest terms with a positive denominator.
//
// Panics if den == 0: a zero denominator at construction time is a
// contract violation, not a recoverable error.
func New(num, den *big.Int) Rational {
	if den.Sign() == 0 {
		panic(fmt.Sprintf("rational.New: zero denominator (num=%s)", num.String()))
	}
	return normalize(new(big.Int).Set(num), new(big.Int).Set(den))
}

// NewInt64 is the int64 convenience form of New.
func NewInt64(num, den int64) Rational {
	return New(big.NewInt(num), big.NewInt(den))
}

// normalize takes ownership of num/den (must not be aliased by the
// caller afterwards), flips signs so den > 0, and reduces by gcd.
func normalize(num, den *big.Int) Rational {
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return Rational{Num: big.NewInt(0), Den: big.NewInt(1)}
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(big.NewInt(1)) != 0 {
		num = new(big.Int).Quo(num, g)
		den = new(big.Int).Quo(den, g)
	}
	return Rational{Num: num, Den: den}
}

// Parse reads a token of the form "p" or "p/q" (integers, optionally
// negative) and returns the corresponding canonical Rational.
//
// Returns ErrMalformedToken if the token is not a valid integer or
// integer pair, and ErrZeroDenominatorToken if q == 0.
func Parse(tok string) (Rational, error) {
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return Rational{}, ErrMalformedToken
	}
	if idx := strings.IndexByte(tok, '/'); idx >= 0 {
		numStr, denStr := tok[:idx], tok[idx+1:]
		num, ok := new(big.Int).SetString(numStr, 10)
		if !ok {
			return Rational{}, ErrMalformedToken
		}
		den, ok := new(big.Int).SetString(denStr, 10)
		if !ok {
			return Rational{}, ErrMalformedToken
		}
		if den.Sign() == 0 {
			return Rational{}, ErrZeroDenominatorToken
		}
		return normalize(num, den), nil
	}
	num, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		return Rational{}, ErrMalformedToken
	}
	return normalize(num, big.NewInt(1)), nil
}

// MustParse is Parse, panicking on error. Intended for literals in tests
// and internal callers that already know the token is well-formed.
func MustParse(tok string) Rational {
	r, err := Parse(tok)
	if err != nil {
		panic(fmt.Sprintf("rational.MustParse(%q): %v", tok, err))
	}
	return r
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{Num: new(big.Int).Neg(r.Num), Den: new(big.Int).Set(r.Den)}
}

// Add returns r + o. Computes a common denominator as lcm(r.Den, o.Den)
// then reduces.
func (r Rational) Add(o Rational) Rational {
	g := new(big.Int).GCD(nil, nil, r.Den, o.Den)
	lcm := new(big.Int).Mul(r.Den, new(big.Int).Quo(o.Den, g))
	num := new(big.Int).Add(
		new(big.Int).Mul(r.Num, new(big.Int).Quo(lcm, r.Den)),
		new(big.Int).Mul(o.Num, new(big.Int).Quo(lcm, o.Den)),
	)
	return normalize(num, lcm)
}

// Sub returns r - o.
func (r Rational) Sub(o Rational) Rational { return r.Add(o.Neg()) }

// Mul returns r * o.
func (r Rational) Mul(o Rational) Rational {
	num := new(big.Int).Mul(r.Num, o.Num)
	den := new(big.Int).Mul(r.Den, o.Den)
	return normalize(num, den)
}

// Reciprocal returns 1/r.
//
// Panics if r is zero: reciprocating zero is a contract violation.
func (r Rational) Reciprocal() Rational {
	if r.Num.Sign() == 0 {
		panic("rational.Reciprocal: reciprocal of zero")
	}
	return normalize(new(big.Int).Set(r.Den), new(big.Int).Set(r.Num))
}

// Div returns r / o. Panics if o is zero (via Reciprocal).
func (r Rational) Div(o Rational) Rational { return r.Mul(o.Reciprocal()) }

// cross returns sign(r.Num*o.Den - o.Num*r.Den), asserting both
// denominators are positive first. Because the invariant Den > 0 always
// holds on values produced by this package, the assertion only fires on
// a value that was hand-built in violation of the invariant, which is a
// contract violation in its own right.
func (r Rational) cross(o Rational) int {
	if r.Den.Sign() <= 0 || o.Den.Sign() <= 0 {
		panic("rational: comparison with non-positive denominator")
	}
	lhs := new(big.Int).Mul(r.Num, o.Den)
	rhs := new(big.Int).Mul(o.Num, r.Den)
	return lhs.Cmp(rhs)
}

// Cmp returns -1, 0, or +1 as r is less than, equal to, or greater than o.
func (r Rational) Cmp(o Rational) int { return r.cross(o) }

// Eq, Lt, Le, Gt, Ge compare r against another Rational.
func (r Rational) Eq(o Rational) bool { return r.cross(o) == 0 }
func (r Rational) Lt(o Rational) bool { return r.cross(o) < 0 }
func (r Rational) Le(o Rational) bool { return r.cross(o) <= 0 }
func (r Rational) Gt(o Rational) bool { return r.cross(o) > 0 }
func (r Rational) Ge(o Rational) bool { return r.cross(o) >= 0 }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Num.Sign() == 0 }

// Sign returns -1, 0, or +1 as r is negative, zero, or positive.
func (r Rational) Sign() int { return r.Num.Sign() }

// String renders r as "p" when Den == 1, else "p/q".
func (r Rational) String() string {
	if r.Den.Cmp(big.NewInt(1)) == 0 {
		return r.Num.String()
	}
	return r.Num.String() + "/" + r.Den.String()
}

// Float64 converts r to a float64, for use at the LP oracle boundary,
// where floating-point solvers operate. This is the one sanctioned
// lossy conversion in the whole engine.
func (r Rational) Float64() float64 {
	f := new(big.Rat).SetFrac(r.Num, r.Den)
	v, _ := f.Float64()
	return v
}

// Min returns the lesser of a and b.
func Min(a, b Rational) Rational {
	if a.Le(b) {
		return a
	}
	return b
}

// Max returns the greater of a and b.
func Max(a, b Rational) Rational {
	if a.Ge(b) {
		return a
	}
	return b
}
