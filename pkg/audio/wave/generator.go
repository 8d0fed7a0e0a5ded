// ABOUTME: Generator interface for pluggable waveform strategies
// ABOUTME: Sine, Square and Harmonic variants plus a multi-frequency mixer
package wave

import "fmt"

// Generator produces a finite waveform for a frequency
type Generator interface {
	// Generate returns duration*sampleRate samples of the waveform at frequency Hz
	Generate(frequency, duration float64, sampleRate int) ([]float64, error)
}

// Sine generates pure tones
type Sine struct{}

// Generate implements Generator
func (Sine) Generate(frequency, duration float64, sampleRate int) ([]float64, error) {
	return Tone(frequency, duration, sampleRate)
}

// Square generates clipped square approximations
type Square struct{}

// Generate implements Generator
func (Square) Generate(frequency, duration float64, sampleRate int) ([]float64, error) {
	return SquareTone(frequency, duration, sampleRate)
}

// Harmonic generates harmonic stacks with Count partials
type Harmonic struct {
	Count int
}

// Generate implements Generator
func (h Harmonic) Generate(frequency, duration float64, sampleRate int) ([]float64, error) {
	return HarmonicStack(frequency, duration, sampleRate, h.Count)
}

// Mix generates one waveform per frequency with gen and averages them
func Mix(gen Generator, duration float64, sampleRate int, frequencies ...float64) ([]float64, error) {
	n, err := SampleCount(duration, sampleRate)
	if err != nil {
		return nil, err
	}

	out := make([]float64, n)
	if len(frequencies) == 0 {
		return out, nil
	}

	for _, f := range frequencies {
		w, err := gen.Generate(f, duration, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("generate %g Hz: %w", f, err)
		}
		for i := 0; i < len(out) && i < len(w); i++ {
			out[i] += w[i]
		}
	}

	scale := 1.0 / float64(len(frequencies))
	for i := range out {
		out[i] *= scale
	}
	return out, nil
}
