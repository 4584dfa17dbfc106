// Package solverconfig holds the solver's runtime configuration:
// which bound-extraction strategy to run, whether the fm strategy
// filters redundant rows after each elimination step, the
// LP-extractor's ceiling precision, and the log
// verbosity. Configs are built via functional options, or decoded
// from an optional YAML file and then validated.
package solverconfig
