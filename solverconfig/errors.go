package solverconfig

import "errors"

// ErrInvalidConfig indicates a Config field is out of range or unknown.
// Returned wrapped with the offending field; never panics, since a bad
// config file is a user-input error, not a programmer contract
// violation.
var ErrInvalidConfig = errors.New("solverconfig: invalid configuration")
