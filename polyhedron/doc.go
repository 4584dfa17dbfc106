// Package polyhedron defines System, an ordered multiset of >=-inequalities
// over a fixed, named set of variables, and its projection operator
// RemoveVar (classical Fourier-Motzkin elimination).
//
// A System is immutable: RemoveVar and every other transformation in
// this package return a fresh System rather than mutating the receiver.
// Immutability here is total rather than lock-guarded, since System
// carries no concurrent-mutation surface.
package polyhedron
