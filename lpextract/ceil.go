package lpextract

import (
	"math"
	"math/big"

	"github.com/polyoa/utvpioa/rational"
)

// ceilUp rounds value up to the nearest multiple of 1/2^precision,
// returned as an exact Rational, so a float64 LP optimum becomes a
// sound (never-too-tight) rational bound.
func ceilUp(value float64, precision uint) rational.Rational {
	scaled := math.Ceil(math.Ldexp(value, int(precision))) // value * 2^precision, rounded up
	num, _ := new(big.Float).SetFloat64(scaled).Int(nil)
	den := new(big.Int).Lsh(big.NewInt(1), precision) // 2^precision
	return rational.New(num, den)
}
