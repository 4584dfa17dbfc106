// Package redundancy implements the redundancy filter: for each row i,
// it asks an lp.Oracle whether the system with row i negated (and all
// others kept as-is) is feasible. If not, row i is implied by the rest
// and is dropped.
package redundancy
