package solverconfig

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Strategy selects which bound-extraction procedure the solver runs.
type Strategy string

const (
	// StrategyFM runs the recursive f/g/h Fourier-Motzkin projection
	// scheme (package fm).
	StrategyFM Strategy = "fm"
	// StrategyLPExtract asks an LP oracle for each UTVPI shape's bound
	// directly (package lpextract).
	StrategyLPExtract Strategy = "lp-extract"
)

// DefaultCeilPrecision is the LP-extractor's default rounding
// precision p: bounds are rounded up to the nearest multiple of
// 1/2^p.
const DefaultCeilPrecision uint = 10

// maxCeilPrecision bounds CeilPrecision well above any precision a
// caller could usefully want, catching typos like a precision given
// in bits-times-ten.
const maxCeilPrecision uint = 64

// Config is the solver's runtime configuration. The zero value is not
// valid; construct with New.
type Config struct {
	Strategy        Strategy
	RemoveRedundant bool
	CeilPrecision   uint
	LogLevel        zerolog.Level
}

// Option customizes a Config by mutating it before construction
// finishes.
type Option func(*Config)

// WithStrategy selects the bound-extraction strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Config) { c.Strategy = s }
}

// WithRemoveRedundant turns the LP-based redundancy filter on or off
// for every System the fm strategy projects during its recursion
// (ignored by StrategyLPExtract).
func WithRemoveRedundant(on bool) Option {
	return func(c *Config) { c.RemoveRedundant = on }
}

// WithCeilPrecision sets the LP-extractor's rounding precision p
// (ignored by StrategyFM).
func WithCeilPrecision(p uint) Option {
	return func(c *Config) { c.CeilPrecision = p }
}

// WithLogLevel sets the minimum zerolog level the solver emits.
func WithLogLevel(level zerolog.Level) Option {
	return func(c *Config) { c.LogLevel = level }
}

// New builds a Config from defaults (StrategyFM, RemoveRedundant
// false, CeilPrecision DefaultCeilPrecision, LogLevel InfoLevel),
// applying opts in order; later options override earlier ones.
func New(opts ...Option) Config {
	c := Config{
		Strategy:        StrategyFM,
		RemoveRedundant: false,
		CeilPrecision:   DefaultCeilPrecision,
		LogLevel:        zerolog.InfoLevel,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Validate reports whether c is usable: Strategy must be one of the
// known strategies, and CeilPrecision must sit in (0, maxCeilPrecision].
func (c Config) Validate() error {
	switch c.Strategy {
	case StrategyFM, StrategyLPExtract:
	default:
		return fmt.Errorf("%w: strategy %q is not one of %q, %q", ErrInvalidConfig, c.Strategy, StrategyFM, StrategyLPExtract)
	}
	if c.CeilPrecision == 0 {
		return fmt.Errorf("%w: ceilPrecision must be > 0", ErrInvalidConfig)
	}
	if c.CeilPrecision > maxCeilPrecision {
		return fmt.Errorf("%w: ceilPrecision %d exceeds max %d", ErrInvalidConfig, c.CeilPrecision, maxCeilPrecision)
	}
	return nil
}

// UsesLPExtract reports whether the configured strategy is the
// LP-based extractor rather than Fourier-Motzkin.
func (c Config) UsesLPExtract() bool {
	return c.Strategy == StrategyLPExtract
}
