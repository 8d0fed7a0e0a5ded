// ABOUTME: Sample rate conversion package using linear interpolation
// ABOUTME: Converts float sample streams between sample rates
// Package resample provides sample rate conversion for float samples.
//
// Uses linear interpolation between neighbouring frames. Handles both
// upsampling and downsampling of interleaved multi-channel buffers.
//
// Example:
//
//	r := resample.New(22050, 44100, 1)
//	out := make([]float64, r.OutputSamplesNeeded(len(in)))
//	n := r.Resample(in, out)
//
// Convert does the same for a whole buffer in one call.
package resample
