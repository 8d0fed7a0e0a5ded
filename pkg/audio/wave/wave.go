// ABOUTME: Sine, square and harmonic waveform generation
// ABOUTME: All generators are pure functions of frequency, duration and rate
package wave

import (
	"errors"
	"fmt"
	"math"
)

// SquareAmplitude is the level of the clipped square approximation
const SquareAmplitude = 0.33

var (
	// ErrInvalidDuration indicates duration*sampleRate is not a usable sample count
	ErrInvalidDuration = errors.New("wave: invalid duration or sample rate")

	// ErrInvalidHarmonics indicates a negative harmonic count
	ErrInvalidHarmonics = errors.New("wave: invalid harmonic count")
)

// maxSamples bounds the generated length to what a slice can hold
const maxSamples = math.MaxInt32

// SampleCount converts a duration in seconds to a number of samples,
// truncating any fractional sample.
func SampleCount(duration float64, sampleRate int) (int, error) {
	n := duration * float64(sampleRate)
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n > maxSamples {
		return 0, fmt.Errorf("%w: %g s at %d Hz", ErrInvalidDuration, duration, sampleRate)
	}
	return int(n), nil
}

// Tone generates a sine wave at frequency Hz.
// Every sample is computed from its absolute time so no phase error accumulates.
func Tone(frequency, duration float64, sampleRate int) ([]float64, error) {
	n, err := SampleCount(duration, sampleRate)
	if err != nil {
		return nil, err
	}

	samples := make([]float64, n)
	for i := range samples {
		t := float64(i) / float64(sampleRate)
		samples[i] = math.Sin(2 * math.Pi * frequency * t)
	}
	return samples, nil
}

// SquareTone hard-clips Tone to ±SquareAmplitude.
// This is not band-limited and aliases heavily at high frequencies.
func SquareTone(frequency, duration float64, sampleRate int) ([]float64, error) {
	samples, err := Tone(frequency, duration, sampleRate)
	if err != nil {
		return nil, err
	}

	for i, s := range samples {
		if s > 0 {
			samples[i] = SquareAmplitude
		} else {
			samples[i] = -SquareAmplitude
		}
	}
	return samples, nil
}

// HarmonicStack sums harmonics n = 1..harmonics of frequency, each scaled by 1/n.
// The sum is divided by its peak only when the peak exceeds 1.0; quiet
// signals are never scaled up.
func HarmonicStack(frequency, duration float64, sampleRate, harmonics int) ([]float64, error) {
	if harmonics < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHarmonics, harmonics)
	}

	n, err := SampleCount(duration, sampleRate)
	if err != nil {
		return nil, err
	}

	sum := make([]float64, n)
	for h := 1; h <= harmonics; h++ {
		partial, err := Tone(frequency*float64(h), duration, sampleRate)
		if err != nil {
			return nil, err
		}

		amplitude := 1.0 / float64(h)
		for i := range sum {
			sum[i] += partial[i] * amplitude
		}
	}

	peak := 0.0
	for _, s := range sum {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak > 1.0 {
		for i := range sum {
			sum[i] /= peak
		}
	}

	return sum, nil
}
