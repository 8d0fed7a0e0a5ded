// ABOUTME: Vowel and diphthong formant tables
// ABOUTME: Maps phoneme symbols to vocal tract targets for synthesis
package phoneme

import (
	"errors"
	"fmt"

	"github.com/Resonate-Protocol/formant-go/pkg/voice"
)

// ErrUnknown is returned by Lookup for symbols not in the tables
var ErrUnknown = errors.New("unknown phoneme")

// Phoneme is a vowel target or a glide between two targets
type Phoneme struct {
	Symbol string
	Onset  voice.Target
	Offset voice.Target // same as Onset for monophthongs
}

// IsDiphthong reports whether the tract moves during the phoneme
func (p Phoneme) IsDiphthong() bool {
	if len(p.Onset.Formants) != len(p.Offset.Formants) {
		return true
	}
	for i, f := range p.Onset.Formants {
		if f != p.Offset.Formants[i] {
			return true
		}
	}
	return false
}

// F1 is the first formant frequency of the onset
func (p Phoneme) F1() float64 { return p.Onset.Formants[0].Frequency }

// F2 is the second formant frequency of the onset
func (p Phoneme) F2() float64 { return p.Onset.Formants[1].Frequency }

func vowel(symbol string, f1, f2, f3, b1, b2, b3 float64) Phoneme {
	t := voice.Target{Formants: []voice.Formant{
		{Frequency: f1, Bandwidth: b1},
		{Frequency: f2, Bandwidth: b2},
		{Frequency: f3, Bandwidth: b3},
	}}
	return Phoneme{Symbol: symbol, Onset: t, Offset: t}
}

var vowels = []Phoneme{
	vowel("a", 850, 1300, 2500, 80, 90, 120),
	vowel("i", 415, 2700, 3300, 60, 100, 150),
	vowel("u", 570, 1430, 2400, 70, 90, 120),
	vowel("e", 670, 2275, 2900, 70, 100, 140),
	vowel("o", 625, 1090, 2400, 70, 80, 120),
}

var diphthongs = [][2]string{
	{"a", "i"},
	{"a", "u"},
	{"o", "i"},
}

// Vowels returns the monophthong table in a fixed order
func Vowels() []Phoneme {
	out := make([]Phoneme, len(vowels))
	copy(out, vowels)
	return out
}

// Diphthongs returns the glides, each named by its two vowel symbols
func Diphthongs() []Phoneme {
	out := make([]Phoneme, 0, len(diphthongs))
	for _, d := range diphthongs {
		from, _ := findVowel(d[0])
		to, _ := findVowel(d[1])
		out = append(out, Phoneme{Symbol: d[0] + d[1], Onset: from.Onset, Offset: to.Onset})
	}
	return out
}

// Symbols lists every known symbol, vowels first
func Symbols() []string {
	var out []string
	for _, p := range Vowels() {
		out = append(out, p.Symbol)
	}
	for _, p := range Diphthongs() {
		out = append(out, p.Symbol)
	}
	return out
}

// Lookup finds a vowel or diphthong by symbol
func Lookup(symbol string) (Phoneme, error) {
	if p, ok := findVowel(symbol); ok {
		return p, nil
	}
	for _, p := range Diphthongs() {
		if p.Symbol == symbol {
			return p, nil
		}
	}
	return Phoneme{}, fmt.Errorf("%w: %q", ErrUnknown, symbol)
}

func findVowel(symbol string) (Phoneme, bool) {
	for _, p := range vowels {
		if p.Symbol == symbol {
			return p, true
		}
	}
	return Phoneme{}, false
}
