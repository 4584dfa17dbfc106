package ioformat

import "errors"

// ErrMalformedInput indicates the input stream does not conform to
// the "L N" header plus L rows format: a contract violation with the
// upstream producer — the reader aborts rather than guessing at a
// recovery.
var ErrMalformedInput = errors.New("ioformat: malformed input stream")
