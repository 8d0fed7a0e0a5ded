// ABOUTME: Source-filter voice assembly package
// ABOUTME: Connects an excitation source to a formant cascade
// Package voice assembles the synthesis pipeline.
//
// A Voice pulls one excitation sample at a time, runs it through a
// formant cascade (the vocal tract) and scales it by a gain. Glide moves
// the tract between vowel targets sample by sample, which is how
// diphthongs are produced. Additive is the older tone-mixing model that
// averages generated waves at the formant and pitch frequencies.
//
// Example:
//
//	src := glottal.NewSource(120, 44100)
//	v := voice.New(src, voice.NewTract(target, 44100), 1.0)
//	samples := v.Render(44100)
package voice
