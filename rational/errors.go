package rational

import "errors"

// Sentinel errors for rational parsing. Arithmetic contract violations
// (division by zero, a comparison against a non-positive denominator)
// are NOT reported through these sentinels: they are programmer errors
// and panic immediately instead.
var (
	// ErrMalformedToken indicates a token could not be parsed as "p" or "p/q".
	ErrMalformedToken = errors.New("rational: malformed token")

	// ErrZeroDenominatorToken indicates a parsed token had denominator 0.
	ErrZeroDenominatorToken = errors.New("rational: zero denominator in token")
)
