// ABOUTME: Second-order resonator filter
// ABOUTME: Derives pole coefficients from center frequency and bandwidth
package formant

import "math"

// Coefficients of the resonator difference equation
//
//	y = b0·x + b1·x1 + b2·x2 − a1·y1 − a2·y2
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// Resonator is a single formant filter. Degenerate tuning (bandwidth <= 0,
// frequency at or above Nyquist) is accepted as given and is the caller's
// responsibility.
type Resonator struct {
	frequency  float64
	bandwidth  float64
	sampleRate float64
	r          float64 // pole radius

	c Coefficients

	x1, x2 float64 // input history
	y1, y2 float64 // output history
}

// NewResonator creates a resonator centered at frequency Hz with the given
// -3 dB bandwidth in Hz
func NewResonator(frequency, bandwidth, sampleRate float64) *Resonator {
	r := &Resonator{sampleRate: sampleRate}
	r.Retune(frequency, bandwidth)
	return r
}

// Retune recomputes the coefficients for a new frequency and bandwidth.
// Delay registers are preserved so the output stays continuous.
func (r *Resonator) Retune(frequency, bandwidth float64) {
	r.frequency = frequency
	r.bandwidth = bandwidth

	r.r = math.Exp(-math.Pi * bandwidth / r.sampleRate)
	theta := 2 * math.Pi * frequency / r.sampleRate

	r.c = Coefficients{
		B0: 1 - r.r,
		A1: -2 * r.r * math.Cos(theta),
		A2: r.r * r.r,
	}
}

// Process filters one sample
func (r *Resonator) Process(x float64) float64 {
	c := &r.c
	y := c.B0*x + c.B1*r.x1 + c.B2*r.x2 - c.A1*r.y1 - c.A2*r.y2

	r.x2 = r.x1
	r.x1 = x
	r.y2 = r.y1
	r.y1 = y

	return y
}

// ProcessBuffer filters buf in place
func (r *Resonator) ProcessBuffer(buf []float64) {
	for i, x := range buf {
		buf[i] = r.Process(x)
	}
}

// Reset clears the delay registers and keeps the tuning
func (r *Resonator) Reset() {
	r.x1, r.x2 = 0, 0
	r.y1, r.y2 = 0, 0
}

// Frequency returns the center frequency in Hz
func (r *Resonator) Frequency() float64 { return r.frequency }

// Bandwidth returns the bandwidth in Hz
func (r *Resonator) Bandwidth() float64 { return r.bandwidth }

// SampleRate returns the sample rate the coefficients were derived for
func (r *Resonator) SampleRate() float64 { return r.sampleRate }

// Pole returns the pole radius R
func (r *Resonator) Pole() float64 { return r.r }

// Coefficients returns the current difference equation coefficients
func (r *Resonator) Coefficients() Coefficients { return r.c }
