package utvpi

import "github.com/polyoa/utvpioa/rational"

// VarBounds is the tightened single-variable range derived from a
// 1-variable System: x <= *PosMax when PosMax != nil, and
// -x <= *NegMax (i.e. x >= -*NegMax) when NegMax != nil. A nil field
// means that direction is unbounded.
type VarBounds struct {
	PosMax *rational.Rational
	NegMax *rational.Rational
}
