// ABOUTME: Formant filter package for vocal tract modelling
// ABOUTME: Provides second-order resonators and ordered resonator cascades
// Package formant implements the vocal tract half of a source-filter synthesizer.
//
// A Resonator is a two-pole recursive band-pass filter tuned by a center
// frequency and bandwidth. A Cascade pushes each sample through its
// resonators in order, so the overall response is the product of the stage
// responses.
//
// Resonators can be retuned between samples without clearing their delay
// registers, which is how formant glides (diphthongs) are produced.
//
// Example:
//
//	tract := formant.NewCascade(
//	    formant.NewResonator(730, 90, 44100),
//	    formant.NewResonator(1090, 110, 44100),
//	    formant.NewResonator(2440, 170, 44100),
//	)
//	for i := range buf {
//	    buf[i] = tract.Process(buf[i])
//	}
package formant
