// Package lp provides the abstract LP oracle used by the redundancy
// filter and the LP extractor, plus a concrete two-phase tableau
// simplex implementation.
//
// Constraints are given as rows of the form a_1*x_1+...+a_n*x_n >= b,
// with variables unrestricted in sign. The oracle converts rationals
// to float64 at its boundary; everything upstream of this package
// stays in exact rational arithmetic, and the oracle's own numerical
// policy (which floating-point solver, which tolerance) is its own
// concern.
//
// SimplexOracle follows the classical two-phase tableau structure: an
// artificial-variable phase finds a basic feasible solution, then a
// reduced-cost optimization phase walks it to the optimum, built on
// gonum.org/v1/gonum/mat.
package lp
