// Package rational implements exact rational arithmetic over arbitrary
// precision integers.
//
// Every Rational is always kept in lowest terms with a strictly positive
// denominator: gcd(|num|, den) == 1 and den > 0, and the zero value always
// normalizes to 0/1. Arithmetic operators never mutate their receivers;
// each returns a freshly normalized value.
//
// Rational is built directly on math/big.Int rather than a third-party
// bignum type, since coefficients and right-hand sides can grow
// arbitrarily large after repeated elimination steps and float64 would
// silently lose precision.
package rational
