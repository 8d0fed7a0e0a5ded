// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample conversion functions
// Package audio provides fundamental sample types and utilities for speech synthesis.
//
// Synthesis code works on float64 samples in the nominal range [-1, 1].
// Filters may overshoot that range; samples are clamped when they are
// quantized to 16-bit PCM:
//   - Clamp, FloatToInt16, Int16ToFloat, Quantize
//   - Peak, RMS, ApplyGain, Normalize
//
// Example:
//
//	audio.Normalize(samples, 0.9)
//	pcm := audio.Quantize(samples)
package audio
