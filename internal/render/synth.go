// ABOUTME: Per-phoneme synthesis for the renderer
// ABOUTME: Builds a fresh voice for each job and renders it in blocks
package render

import (
	"context"
	"fmt"

	"github.com/Resonate-Protocol/formant-go/internal/config"
	"github.com/Resonate-Protocol/formant-go/internal/phoneme"
	"github.com/Resonate-Protocol/formant-go/pkg/audio"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/glottal"
	"github.com/Resonate-Protocol/formant-go/pkg/audio/wave"
	"github.com/Resonate-Protocol/formant-go/pkg/voice"
)

// blockSize is how many samples are rendered between cancellation checks
const blockSize = 4096

// Synthesize renders one phoneme at cfg.SampleRate. The glottal source
// runs through a formant tract; the other sources use additive mixing.
func Synthesize(ctx context.Context, cfg config.Config, source string, p phoneme.Phoneme) ([]float64, error) {
	duration := float64(cfg.Voice.DurationMS) / 1000
	n, err := wave.SampleCount(duration, cfg.SampleRate)
	if err != nil {
		return nil, err
	}

	glide := 0
	if p.IsDiphthong() {
		glide = cfg.Voice.GlideMS * cfg.SampleRate / 1000
		if glide > n {
			glide = n
		}
	}

	switch source {
	case config.SourceGlottal:
		return synthesizeGlottal(ctx, cfg, p, n, glide)
	case config.SourceSine:
		return synthesizeAdditive(cfg, p, wave.Sine{}, n, glide)
	case config.SourceSquare:
		return synthesizeAdditive(cfg, p, wave.Square{}, n, glide)
	case config.SourceHarmonic:
		return synthesizeAdditive(cfg, p, wave.Harmonic{Count: cfg.Voice.Harmonics}, n, glide)
	}
	return nil, fmt.Errorf("unknown source %q", source)
}

// synthesizeGlottal holds the onset, glides over glide samples, then
// holds the offset
func synthesizeGlottal(ctx context.Context, cfg config.Config, p phoneme.Phoneme, n, glide int) ([]float64, error) {
	src := glottal.NewSource(cfg.Voice.Pitch, cfg.SampleRate)
	var exc voice.Excitation = src
	if cfg.Voice.Flutter > 0 {
		exc = voice.NewFlutter(src, cfg.Voice.Flutter, cfg.SampleRate)
	}
	v := voice.New(exc, voice.NewTract(p.Onset, cfg.SampleRate), cfg.Voice.Gain)

	steady := n - glide
	pre := steady / 2
	post := steady - pre

	out := make([]float64, 0, n)
	hold := func(count int) error {
		for count > 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			block := min(count, blockSize)
			out = append(out, v.Render(block)...)
			count -= block
		}
		return nil
	}

	if err := hold(pre); err != nil {
		return nil, err
	}
	if glide > 0 {
		g, err := v.Glide(p.Offset, glide)
		if err != nil {
			return nil, err
		}
		out = append(out, g...)
	}
	if err := hold(post); err != nil {
		return nil, err
	}
	return out, nil
}

// synthesizeAdditive mixes generated waves at the onset formants and, for
// diphthongs, crossfades linearly to the offset mix over the glide
func synthesizeAdditive(cfg config.Config, p phoneme.Phoneme, gen wave.Generator, n, glide int) ([]float64, error) {
	duration := float64(cfg.Voice.DurationMS) / 1000
	onset, err := voice.Additive(p.F1(), p.F2(), cfg.Voice.Pitch, duration, cfg.SampleRate, gen)
	if err != nil {
		return nil, err
	}

	out := onset[:min(n, len(onset))]
	if glide > 0 {
		offset, err := voice.Additive(p.Offset.Formants[0].Frequency, p.Offset.Formants[1].Frequency,
			cfg.Voice.Pitch, duration, cfg.SampleRate, gen)
		if err != nil {
			return nil, err
		}

		start := (len(out) - glide) / 2
		for i := start; i < len(out); i++ {
			mix := 1.0
			if i < start+glide {
				mix = float64(i-start+1) / float64(glide)
			}
			out[i] = (1-mix)*out[i] + mix*offset[i]
		}
	}

	audio.ApplyGain(out, cfg.Voice.Gain)
	return out, nil
}
