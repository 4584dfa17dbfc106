package lpextract

import "errors"

// ErrDefaultPrecisionZero indicates a caller passed a zero ceiling
// precision, which would make every bound round up to the nearest
// integer regardless of the true optimum's fractional part — almost
// certainly not intended.
var ErrDefaultPrecisionZero = errors.New("lpextract: ceiling precision must be > 0")
