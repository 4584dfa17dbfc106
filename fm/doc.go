// Package fm implements the recursive f/g/h Fourier-Motzkin projection
// scheme that enumerates every unordered pair of variables in a System
// exactly once, reusing sub-projections instead of re-eliminating from
// scratch for each pair. A vanilla, quadratic-work alternative
// (VanillaFMOA) is provided alongside it as an equivalence oracle for
// tests.
package fm
