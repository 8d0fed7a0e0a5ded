// ABOUTME: Excitation sources for the voice pipeline
// ABOUTME: Buffer-backed excitation and f0 flutter around a pitched source
package voice

import "math"

// Excitation yields one source sample per call
type Excitation interface {
	Next() float64
}

// Pitched is an excitation whose fundamental can be changed while running.
// *glottal.Source satisfies it.
type Pitched interface {
	Excitation
	Frequency() float64
	SetFrequency(f0 float64)
}

// Samples replays a precomputed buffer and yields silence once exhausted
type Samples struct {
	buf []float64
	pos int
}

// NewSamples wraps buf as an excitation
func NewSamples(buf []float64) *Samples {
	return &Samples{buf: buf}
}

// Next returns the next buffered sample, or 0 past the end
func (s *Samples) Next() float64 {
	if s.pos >= len(s.buf) {
		return 0
	}
	x := s.buf[s.pos]
	s.pos++
	return x
}

// Remaining returns how many buffered samples are left
func (s *Samples) Remaining() int {
	return len(s.buf) - s.pos
}

// Flutter wobbles the fundamental of a pitched source with three slow
// incommensurate sines, the way the Klatt synthesizer adds f0 flutter.
type Flutter struct {
	src        Pitched
	base       float64
	depth      float64
	sampleRate float64
	n          int
}

// NewFlutter wraps src. Depth is in percent; 25 gives roughly ±1.5 Hz at 100 Hz.
func NewFlutter(src Pitched, depth float64, sampleRate int) *Flutter {
	return &Flutter{
		src:        src,
		base:       src.Frequency(),
		depth:      depth,
		sampleRate: float64(sampleRate),
	}
}

// Next retunes the wrapped source and returns its next sample
func (f *Flutter) Next() float64 {
	if f.depth != 0 {
		t := float64(f.n) / f.sampleRate
		wobble := math.Sin(2*math.Pi*12.7*t) + math.Sin(2*math.Pi*7.1*t) + math.Sin(2*math.Pi*4.7*t)
		f.src.SetFrequency(f.base + (f.depth/50)*(f.base/100)*wobble)
	}
	f.n++
	return f.src.Next()
}

// Frequency returns the unmodulated fundamental
func (f *Flutter) Frequency() float64 { return f.base }

// SetFrequency changes the fundamental the flutter is centred on
func (f *Flutter) SetFrequency(f0 float64) {
	f.base = f0
	f.src.SetFrequency(f0)
}
