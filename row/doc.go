// Package row provides operations on Row, an ordered sequence of
// rational.Rational values representing one linear inequality
// a_1*x_1 + ... + a_n*x_n >= b, with the coefficients in positions
// 0..n-1 and the right-hand side in the final position.
//
// Every function here is pure: none mutates its arguments, each returns
// a freshly allocated Row.
package row
