package solverconfig

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// yamlConfig mirrors Config with plain-string fields for the two
// values (Strategy, LogLevel) that don't decode directly from YAML
// scalars into their domain types.
type yamlConfig struct {
	Strategy        string `yaml:"strategy"`
	RemoveRedundant bool   `yaml:"removeRedundant"`
	CeilPrecision   uint   `yaml:"ceilPrecision"`
	LogLevel        string `yaml:"logLevel"`
}

// Load decodes a Config from YAML, for the CLI entry point's optional
// config file. Fields absent from the document fall back to New()'s
// defaults. The result is not validated; call Validate.
func Load(r io.Reader) (Config, error) {
	cfg := New()

	var doc yamlConfig
	doc.Strategy = string(cfg.Strategy)
	doc.CeilPrecision = cfg.CeilPrecision
	doc.LogLevel = cfg.LogLevel.String()

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	level, err := zerolog.ParseLevel(doc.LogLevel)
	if err != nil {
		return Config{}, fmt.Errorf("%w: logLevel %q: %v", ErrInvalidConfig, doc.LogLevel, err)
	}

	cfg.Strategy = Strategy(doc.Strategy)
	cfg.RemoveRedundant = doc.RemoveRedundant
	cfg.CeilPrecision = doc.CeilPrecision
	cfg.LogLevel = level
	return cfg, nil
}
