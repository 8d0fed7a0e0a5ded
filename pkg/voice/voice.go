// ABOUTME: Voice pipeline and vowel targets
// ABOUTME: Renders excitation through a formant tract with gliding retunes
package voice

import (
	"fmt"

	"github.com/Resonate-Protocol/formant-go/pkg/audio/formant"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/wave"
)

// Formant is one resonance of the vocal tract
type Formant struct {
	Frequency float64 // Hz
	Bandwidth float64 // Hz
}

// Target is a tract configuration, lowest formant first
type Target struct {
	Formants []Formant
}

// NewTract builds a cascade with one resonator per formant of target
func NewTract(target Target, sampleRate int) *formant.Cascade {
	stages := make([]*formant.Resonator, len(target.Formants))
	for i, f := range target.Formants {
		stages[i] = formant.NewResonator(f.Frequency, f.Bandwidth, float64(sampleRate))
	}
	return formant.NewCascade(stages...)
}

// Voice is a source-filter pipeline. It is not safe for concurrent use.
type Voice struct {
	source Excitation
	tract  *formant.Cascade
	gain   float64
}

// New creates a voice
func New(source Excitation, tract *formant.Cascade, gain float64) *Voice {
	return &Voice{
		source: source,
		tract:  tract,
		gain:   gain,
	}
}

// Source returns the excitation
func (v *Voice) Source() Excitation { return v.source }

// Tract returns the formant cascade
func (v *Voice) Tract() *formant.Cascade { return v.tract }

// Gain returns the output gain
func (v *Voice) Gain() float64 { return v.gain }

// SetGain changes the output gain
func (v *Voice) SetGain(gain float64) { v.gain = gain }

// Next produces one output sample
func (v *Voice) Next() float64 {
	return v.gain * v.tract.Process(v.source.Next())
}

// Render produces n samples with the tract held still
func (v *Voice) Render(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v.Next()
	}
	return out
}

// Glide renders n samples while moving every stage linearly from its
// current tuning to to. The last sample is produced with the tract at to.
// Filter registers carry over, so the glide has no discontinuity.
func (v *Voice) Glide(to Target, n int) ([]float64, error) {
	if len(to.Formants) != v.tract.Len() {
		return nil, fmt.Errorf("glide target has %d formants, tract has %d stages", len(to.Formants), v.tract.Len())
	}

	from := make([]Formant, v.tract.Len())
	for i := range from {
		stage := v.tract.Stage(i)
		from[i] = Formant{Frequency: stage.Frequency(), Bandwidth: stage.Bandwidth()}
	}

	out := make([]float64, n)
	for k := range out {
		for i, a := range from {
			b := to.Formants[i]
			if k == n-1 {
				v.tract.Stage(i).Retune(b.Frequency, b.Bandwidth)
				continue
			}
			t := float64(k+1) / float64(n)
			v.tract.Stage(i).Retune(
				a.Frequency+(b.Frequency-a.Frequency)*t,
				a.Bandwidth+(b.Bandwidth-a.Bandwidth)*t,
			)
		}
		out[k] = v.Next()
	}
	return out, nil
}

// Additive mixes waves at the two formant frequencies and the pitch
// with equal weight
func Additive(f1, f2, pitch, duration float64, sampleRate int, gen wave.Generator) ([]float64, error) {
	return wave.Mix(gen, duration, sampleRate, f1, f2, pitch)
}
