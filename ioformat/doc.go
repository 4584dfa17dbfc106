// Package ioformat implements the stream-based reader and writer for
// the UTVPI over-approximation engine's external wire format: a
// whitespace-separated token stream in, and a header plus
// one-line-per-constraint stream out.
package ioformat
