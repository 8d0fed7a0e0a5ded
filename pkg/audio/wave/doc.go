// ABOUTME: Waveform generator package for simple excitation signals
// ABOUTME: Provides pure tone, clipped square and harmonic stack generators
// Package wave generates finite sample sequences for synthesis experiments.
//
// Three waveforms are available, both as plain functions and as Generator
// implementations so callers can pass the waveform strategy around:
//   - Tone / Sine: a sine computed from absolute time i/sampleRate
//   - SquareTone / Square: the sine hard-clipped to ±0.33
//   - HarmonicStack / Harmonic: 1/n weighted harmonics, peak-limited to 1.0
//
// Any frequency is accepted, including 0 and frequencies above Nyquist
// (aliasing is expected). Only the sample count is validated.
//
// Example:
//
//	samples, err := wave.HarmonicStack(220, 0.5, 44100, 5)
//	mixed, err := wave.Mix(wave.Sine{}, 0.5, 44100, 850, 1300, 440)
package wave
