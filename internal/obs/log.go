// Package obs holds the single package-level logger shared by the
// engine: one zerolog.Logger constructed once and exported as a
// value, rather than threading a logger through every function
// signature.
package obs

import (
	"os"

	"github.com/rs/zerolog"
)

// Log is the shared structured logger. Callers that need a different
// verbosity adjust zerolog.SetGlobalLevel, not this variable.
var Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
