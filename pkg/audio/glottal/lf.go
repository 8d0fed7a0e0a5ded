// ABOUTME: LF model glottal source oscillator
// ABOUTME: Generates open, closing and return phases of the glottal pulse
package glottal

import "math"

// Fractions of the pitch period T0 that shape the pulse
const (
	OpenPhase    = 0.4  // Tp, peak of the open phase
	ClosurePoint = 0.57 // Te, glottal closure instant
	ReturnPhase  = 0.03 // Ta, return phase time constant
)

// Source is a stateful LF glottal pulse generator. A Source belongs to a
// single voice and must not be shared between goroutines.
type Source struct {
	f0         float64 // fundamental frequency in Hz
	sampleRate float64
	phase      float64 // fraction of the current pitch period, [0, 1)
}

// NewSource creates a source at f0 Hz. f0 must be positive; other values are
// not checked and produce undefined output.
func NewSource(f0 float64, sampleRate int) *Source {
	return &Source{
		f0:         f0,
		sampleRate: float64(sampleRate),
	}
}

// Next returns the next excitation sample and advances the phase
func (s *Source) Next() float64 {
	t0 := 1.0 / s.f0
	tp := OpenPhase * t0
	te := ClosurePoint * t0
	ta := ReturnPhase * t0

	t := s.phase * t0

	var e float64
	if t < te {
		wg := math.Pi / tp
		alpha := -wg / math.Tan(wg*te)
		e = math.Exp(alpha*t) * math.Sin(wg*t)
	} else {
		epsilon := 1.0 / ta
		e = -math.Exp(-epsilon * (t - te))
	}

	s.phase += 1.0 / (s.sampleRate * t0)
	if s.phase >= 1.0 {
		s.phase -= math.Floor(s.phase)
	}

	return e
}

// Fill writes consecutive samples into buf
func (s *Source) Fill(buf []float64) {
	for i := range buf {
		buf[i] = s.Next()
	}
}

// SetFrequency changes f0 starting with the next sample. The phase is kept.
func (s *Source) SetFrequency(f0 float64) {
	s.f0 = f0
}

// Frequency returns the current fundamental frequency
func (s *Source) Frequency() float64 { return s.f0 }

// Phase returns the position within the current pitch period
func (s *Source) Phase() float64 { return s.phase }

// Reset rewinds the source to the start of a period
func (s *Source) Reset() { s.phase = 0 }
