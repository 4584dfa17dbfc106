// Command utvpioa reads a rational polyhedron from stdin, computes its
// UTVPI over-approximation, and writes the result to stdout.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/polyoa/utvpioa/fm"
	"github.com/polyoa/utvpioa/internal/obs"
	"github.com/polyoa/utvpioa/ioformat"
	"github.com/polyoa/utvpioa/lp"
	"github.com/polyoa/utvpioa/lpextract"
	"github.com/polyoa/utvpioa/redundancy"
	"github.com/polyoa/utvpioa/row"
	"github.com/polyoa/utvpioa/solverconfig"
)

func main() {
	strategy := flag.String("strategy", string(solverconfig.StrategyFM), "extraction strategy: fm or lp-extract")
	removeRedundant := flag.Bool("remove-redundant", false, "filter redundant constraints via LP after each fm elimination step")
	ceilPrecision := flag.Uint("ceil-precision", solverconfig.DefaultCeilPrecision, "lp-extract rounding precision p (bounds round up to a multiple of 1/2^p)")
	configPath := flag.String("config", "", "optional YAML config file (overrides the flags above)")
	verbose := flag.Bool("verbose", false, "trace the input system and the redundancy-filtered system before extraction")
	flag.Parse()

	if err := run(*strategy, *removeRedundant, *ceilPrecision, *configPath, *verbose); err != nil {
		obs.Log.Error().Err(err).Msg("utvpioa: failed")
		os.Exit(1)
	}
}

func run(strategy string, removeRedundant bool, ceilPrecision uint, configPath string, verbose bool) error {
	cfg := solverconfig.New(
		solverconfig.WithStrategy(solverconfig.Strategy(strategy)),
		solverconfig.WithRemoveRedundant(removeRedundant),
		solverconfig.WithCeilPrecision(ceilPrecision),
	)

	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()
		cfg, err = solverconfig.Load(f)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	sys, err := ioformat.Read(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if verbose {
		obs.Log.Info().Msg("input system:")
		if err := ioformat.Write(os.Stderr, sys.VarLabels, true, sys.Rows); err != nil {
			return err
		}
	}

	oracle := lp.NewSimplexOracle()
	filter := redundancy.New(oracle)

	if verbose {
		filtered, err := filter(sys.Rows)
		if err != nil {
			return fmt.Errorf("redundancy filtering: %w", err)
		}
		obs.Log.Info().Msg("after redundancy filtering:")
		if err := ioformat.Write(os.Stderr, sys.VarLabels, true, filtered); err != nil {
			return err
		}
	}

	var feasible bool
	var rows []row.Row
	if cfg.UsesLPExtract() {
		feasible, rows, err = lpextract.Extract(sys, oracle, cfg.CeilPrecision)
	} else {
		extractor := &fm.Extractor{RemoveRedundant: cfg.RemoveRedundant, Filter: filter}
		feasible, rows, err = extractor.Extract(sys)
	}
	if err != nil {
		return fmt.Errorf("extracting bounds: %w", err)
	}

	return ioformat.Write(os.Stdout, sys.VarLabels, feasible, rows)
}
