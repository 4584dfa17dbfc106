// Package lpextract implements the LP-based UTVPI bound extractor:
// instead of Fourier-Motzkin elimination, it asks the LP oracle
// directly to maximise each UTVPI shape over the System and rounds
// the result up to a rational with a fixed power-of-two denominator.
// It exists to cross-check the fm package's result and to handle
// systems that exceed FM's tractability.
package lpextract
