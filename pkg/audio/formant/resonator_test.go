// ABOUTME: Tests for the resonator filter
// ABOUTME: Tests coefficient derivation, impulse response and retuning
package formant

import (
	"math"
	"testing"
)

func TestResonatorCoefficients(t *testing.T) {
	r := NewResonator(700, 130, 44100)

	R := math.Exp(-math.Pi * 130 / 44100)
	theta := 2 * math.Pi * 700 / 44100

	c := r.Coefficients()
	if r.Pole() != R {
		t.Errorf("expected R=%v, got %v", R, r.Pole())
	}
	if c.A1 != -2*R*math.Cos(theta) {
		t.Errorf("expected a1=%v, got %v", -2*R*math.Cos(theta), c.A1)
	}
	if c.A2 != R*R {
		t.Errorf("expected a2=%v, got %v", R*R, c.A2)
	}
	if c.B0 != 1-R {
		t.Errorf("expected b0=%v, got %v", 1-R, c.B0)
	}
	if c.B1 != 0 || c.B2 != 0 {
		t.Errorf("expected b1=b2=0, got %v, %v", c.B1, c.B2)
	}
}

func TestResonatorImpulseResponse(t *testing.T) {
	const (
		freq       = 700.0
		bw         = 130.0
		sampleRate = 44100.0
	)
	r := NewResonator(freq, bw, sampleRate)
	R := r.Pole()
	theta := 2 * math.Pi * freq / sampleRate
	envelope := (1 - R) / math.Sin(theta)

	for n := 0; n < int(sampleRate); n++ {
		x := 0.0
		if n == 0 {
			x = 1
		}
		y := r.Process(x)

		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("sample %d diverged: %v", n, y)
		}

		// Closed form of a two-pole impulse response
		decay := math.Pow(R, float64(n))
		expected := envelope * decay * math.Sin(float64(n+1)*theta)
		if math.Abs(y-expected) > 1e-9 {
			t.Fatalf("sample %d: expected %v, got %v", n, expected, y)
		}

		// Envelope decays as R^n
		if math.Abs(y) > envelope*decay+1e-12 {
			t.Fatalf("sample %d: |y|=%v exceeds envelope %v", n, math.Abs(y), envelope*decay)
		}
	}
}

func TestResonatorFirstSamples(t *testing.T) {
	r := NewResonator(1000, 100, 16000)
	c := r.Coefficients()

	y0 := r.Process(1)
	if y0 != c.B0 {
		t.Errorf("expected y0=b0=%v, got %v", c.B0, y0)
	}

	y1 := r.Process(0)
	if y1 != -c.A1*y0 {
		t.Errorf("expected y1=%v, got %v", -c.A1*y0, y1)
	}

	y2 := r.Process(0)
	if want := -c.A1*y1 - c.A2*y0; y2 != want {
		t.Errorf("expected y2=%v, got %v", want, y2)
	}
}

func TestRetunePreservesState(t *testing.T) {
	r := NewResonator(500, 80, 16000)
	r.Process(1)
	r.Process(0)

	r.Retune(900, 120)
	if r.Frequency() != 900 || r.Bandwidth() != 120 {
		t.Fatalf("expected tuning 900/120, got %v/%v", r.Frequency(), r.Bandwidth())
	}

	// A fresh filter with the same tuning is silent on zero input; the
	// retuned one keeps ringing from its history.
	fresh := NewResonator(900, 120, 16000)
	if fresh.Coefficients() != r.Coefficients() {
		t.Fatal("retuned coefficients should match a fresh filter")
	}
	if y := fresh.Process(0); y != 0 {
		t.Fatalf("fresh filter should be silent, got %v", y)
	}
	if y := r.Process(0); y == 0 {
		t.Error("retune must not clear the delay registers")
	}
}

func TestResonatorReset(t *testing.T) {
	r := NewResonator(500, 80, 16000)
	r.Process(1)
	r.Reset()

	if y := r.Process(0); y != 0 {
		t.Errorf("expected silence after reset, got %v", y)
	}
	if r.Frequency() != 500 {
		t.Errorf("reset must keep tuning, got %v", r.Frequency())
	}
}

func TestResonatorProcessBuffer(t *testing.T) {
	a := NewResonator(700, 130, 44100)
	b := NewResonator(700, 130, 44100)

	buf := []float64{1, 0.5, -0.25, 0, 0, 0.1}
	expected := make([]float64, len(buf))
	for i, x := range buf {
		expected[i] = a.Process(x)
	}

	b.ProcessBuffer(buf)
	for i := range buf {
		if buf[i] != expected[i] {
			t.Errorf("sample %d: expected %v, got %v", i, expected[i], buf[i])
		}
	}
}
