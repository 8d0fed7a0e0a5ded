// ABOUTME: Tests for the formant cascade
// ABOUTME: Tests stage ordering, empty cascades and mid-stream retuning
package formant

import (
	"math"
	"testing"
)

func TestEmptyCascadeIsIdentity(t *testing.T) {
	c := NewCascade()
	for _, x := range []float64{0, 1, -0.5, 3} {
		if y := c.Process(x); y != x {
			t.Errorf("expected %v, got %v", x, y)
		}
	}
	if c.Len() != 0 {
		t.Errorf("expected 0 stages, got %d", c.Len())
	}
}

func TestCascadeComposesInOrder(t *testing.T) {
	c := NewCascade(
		NewResonator(730, 90, 44100),
		NewResonator(1090, 110, 44100),
		NewResonator(2440, 170, 44100),
	)
	r1 := NewResonator(730, 90, 44100)
	r2 := NewResonator(1090, 110, 44100)
	r3 := NewResonator(2440, 170, 44100)

	input := []float64{1, 0, 0, 0.3, -0.7, 0, 0, 0, 0.2, 0}
	for i, x := range input {
		expected := r3.Process(r2.Process(r1.Process(x)))
		if y := c.Process(x); y != expected {
			t.Fatalf("sample %d: expected %v, got %v", i, expected, y)
		}
	}
}

func TestCascadeProcessBuffer(t *testing.T) {
	c1 := NewCascade(NewResonator(500, 60, 16000), NewResonator(1500, 90, 16000))
	c2 := NewCascade(NewResonator(500, 60, 16000), NewResonator(1500, 90, 16000))

	buf := make([]float64, 64)
	buf[0] = 1
	expected := make([]float64, len(buf))
	for i, x := range buf {
		expected[i] = c1.Process(x)
	}

	c2.ProcessBuffer(buf)
	for i := range buf {
		if buf[i] != expected[i] {
			t.Fatalf("sample %d: expected %v, got %v", i, expected[i], buf[i])
		}
	}
}

func TestCascadeRetune(t *testing.T) {
	c := NewCascade(NewResonator(300, 60, 16000), NewResonator(2300, 100, 16000))

	if err := c.Retune(1, 900, 80); err != nil {
		t.Fatalf("Retune failed: %v", err)
	}
	if f := c.Stage(1).Frequency(); f != 900 {
		t.Errorf("expected stage 1 at 900 Hz, got %v", f)
	}

	for _, i := range []int{-1, 2} {
		if err := c.Retune(i, 100, 50); err == nil {
			t.Errorf("expected error retuning stage %d", i)
		}
	}
}

func TestCascadeGlideStaysBounded(t *testing.T) {
	c := NewCascade(NewResonator(270, 60, 44100), NewResonator(2290, 90, 44100))

	const n = 44100
	for i := 0; i < n; i++ {
		frac := float64(i) / n
		c.Stage(0).Retune(270+frac*(730-270), 60)
		c.Stage(1).Retune(2290+frac*(1090-2290), 90)

		x := 0.0
		if i%441 == 0 {
			x = 1
		}
		y := c.Process(x)
		if math.IsNaN(y) || math.Abs(y) > 10 {
			t.Fatalf("sample %d diverged: %v", i, y)
		}
	}
}

func TestCascadeReset(t *testing.T) {
	c := NewCascade(NewResonator(500, 60, 16000), NewResonator(1500, 90, 16000))
	c.Process(1)
	c.Reset()
	if y := c.Process(0); y != 0 {
		t.Errorf("expected silence after reset, got %v", y)
	}
}
