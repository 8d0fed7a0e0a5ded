// ABOUTME: Tests for the phoneme tables
// ABOUTME: Tests lookups, formant ordering and diphthong endpoints
package phoneme

import (
	"errors"
	"testing"

	"github.com/Resonate-Protocol/formant-go/pkg/voice"
)

func TestVowelFormants(t *testing.T) {
	tests := []struct {
		symbol string
		f1, f2 float64
	}{
		{"a", 850, 1300},
		{"i", 415, 2700},
		{"u", 570, 1430},
		{"e", 670, 2275},
		{"o", 625, 1090},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			p, err := Lookup(tt.symbol)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if p.F1() != tt.f1 || p.F2() != tt.f2 {
				t.Errorf("expected F1=%g F2=%g, got F1=%g F2=%g", tt.f1, tt.f2, p.F1(), p.F2())
			}
			if p.IsDiphthong() {
				t.Error("vowel should not be a diphthong")
			}
		})
	}
}

func TestFormantsAscend(t *testing.T) {
	for _, p := range append(Vowels(), Diphthongs()...) {
		for _, target := range []struct {
			name string
			f    []float64
		}{
			{"onset", freqs(p.Onset.Formants)},
			{"offset", freqs(p.Offset.Formants)},
		} {
			for i := 1; i < len(target.f); i++ {
				if target.f[i] <= target.f[i-1] {
					t.Errorf("%s %s: formant %d (%g) not above formant %d (%g)",
						p.Symbol, target.name, i+1, target.f[i], i, target.f[i-1])
				}
			}
		}
	}
}

func TestDiphthongEndpoints(t *testing.T) {
	ai, err := Lookup("ai")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if !ai.IsDiphthong() {
		t.Fatal("ai should be a diphthong")
	}

	a, _ := Lookup("a")
	i, _ := Lookup("i")
	if ai.F1() != a.F1() {
		t.Errorf("ai should start at a: F1 %g vs %g", ai.F1(), a.F1())
	}
	if ai.Offset.Formants[0] != i.Onset.Formants[0] {
		t.Errorf("ai should end at i: %v vs %v", ai.Offset.Formants[0], i.Onset.Formants[0])
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("zz")
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("expected ErrUnknown, got %v", err)
	}
}

func TestSymbols(t *testing.T) {
	want := []string{"a", "i", "u", "e", "o", "ai", "au", "oi"}
	got := Symbols()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("symbol %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestVowelsReturnsCopy(t *testing.T) {
	v := Vowels()
	v[0].Symbol = "x"
	if _, err := Lookup("a"); err != nil {
		t.Error("mutating the returned slice must not affect the table")
	}
}

func freqs(fs []voice.Formant) []float64 {
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = f.Frequency
	}
	return out
}
