// ABOUTME: Glottal source package for voiced excitation
// ABOUTME: Implements a Liljencrants-Fant style glottal flow derivative oscillator
// Package glottal provides a quasi-periodic voice source for source-filter synthesis.
//
// The Source emits one LF-shaped pulse per pitch period. Timing is derived
// from the current fundamental frequency on every sample, and the running
// phase is fractional, so changing the frequency between samples bends the
// pitch smoothly.
//
// Example:
//
//	src := glottal.NewSource(120, 44100)
//	buf := make([]float64, 44100)
//	src.Fill(buf)
package glottal
