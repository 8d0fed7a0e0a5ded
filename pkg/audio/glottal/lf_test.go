// ABOUTME: Tests for the LF glottal source
// ABOUTME: Tests periodicity, amplitude bounds and pitch changes
package glottal

import (
	"math"
	"testing"
)

func TestSourcePeriodicity(t *testing.T) {
	const (
		f0         = 100.0
		sampleRate = 44100
	)
	period := int(math.Round(sampleRate / f0))

	src := NewSource(f0, sampleRate)
	buf := make([]float64, period*6)
	src.Fill(buf)

	for i := 0; i+period < len(buf); i++ {
		if diff := math.Abs(buf[i] - buf[i+period]); diff > 1e-6 {
			t.Fatalf("sample %d differs from sample %d by %g", i, i+period, diff)
		}
	}
}

func TestSourcePulseShape(t *testing.T) {
	src := NewSource(100, 44100)
	buf := make([]float64, 441)
	src.Fill(buf)

	if buf[0] != 0 {
		t.Errorf("expected pulse to start at 0, got %f", buf[0])
	}

	// Open phase rises before closure
	if buf[50] <= 0 {
		t.Errorf("expected positive flow derivative early in the open phase, got %f", buf[50])
	}

	// Return phase starts near -1 at the closure instant and decays toward 0
	closure := int(math.Ceil(ClosurePoint * 441))
	if buf[closure] > -0.5 {
		t.Errorf("expected strong negative excitation at closure, got %f", buf[closure])
	}
	if math.Abs(buf[440]) > 1e-3 {
		t.Errorf("expected return phase to settle near 0, got %f", buf[440])
	}
}

func TestSourceBounded(t *testing.T) {
	for _, f0 := range []float64{60, 100, 220, 440} {
		src := NewSource(f0, 44100)
		for i := 0; i < 44100; i++ {
			e := src.Next()
			if math.IsNaN(e) || math.Abs(e) > 1.0 {
				t.Fatalf("f0=%g sample %d = %f out of range", f0, i, e)
			}
		}
	}
}

func TestSourcePhaseWraps(t *testing.T) {
	src := NewSource(1000, 8000)
	for i := 0; i < 100; i++ {
		src.Next()
		if p := src.Phase(); p < 0 || p >= 1 {
			t.Fatalf("phase %f out of [0, 1) after %d samples", p, i+1)
		}
	}
}

func TestSetFrequencyKeepsPhase(t *testing.T) {
	src := NewSource(100, 44100)
	for i := 0; i < 100; i++ {
		src.Next()
	}

	before := src.Phase()
	src.SetFrequency(200)
	if src.Phase() != before {
		t.Errorf("phase changed on retune: %f -> %f", before, src.Phase())
	}
	if src.Frequency() != 200 {
		t.Errorf("expected frequency 200, got %f", src.Frequency())
	}

	// At 200 Hz the phase advances twice as fast
	src.Next()
	step := src.Phase() - before
	if math.Abs(step-200.0/44100) > 1e-12 {
		t.Errorf("expected phase step %g, got %g", 200.0/44100, step)
	}
}

func TestSourceReset(t *testing.T) {
	src := NewSource(150, 16000)
	first := src.Next()
	for i := 0; i < 37; i++ {
		src.Next()
	}
	src.Reset()
	if src.Phase() != 0 {
		t.Fatalf("expected phase 0 after reset, got %f", src.Phase())
	}
	if got := src.Next(); got != first {
		t.Errorf("expected %f after reset, got %f", first, got)
	}
}
