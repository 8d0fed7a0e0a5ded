// ABOUTME: Renderer configuration
// ABOUTME: YAML file defaults with FORMANT_* environment overrides
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Source names accepted in voice.source
const (
	SourceGlottal  = "glottal"
	SourceSine     = "sine"
	SourceSquare   = "square"
	SourceHarmonic = "harmonic"
)

type VoiceConfig struct {
	Source     string  `yaml:"source"`
	Pitch      float64 `yaml:"pitch"`
	DurationMS int     `yaml:"duration_ms"`
	GlideMS    int     `yaml:"glide_ms"`
	Gain       float64 `yaml:"gain"`
	Peak       float64 `yaml:"peak"`
	Harmonics  int     `yaml:"harmonics"`
	Flutter    float64 `yaml:"flutter"`
}

type Config struct {
	OutputDir   string      `yaml:"output_dir"`
	SampleRate  int         `yaml:"sample_rate"`
	OutputRate  int         `yaml:"output_rate"`
	Concurrency int         `yaml:"concurrency"`
	Phonemes    []string    `yaml:"phonemes"`
	Voice       VoiceConfig `yaml:"voice"`
}

func Default() Config {
	return Config{
		OutputDir:   "sounds",
		SampleRate:  44100,
		OutputRate:  44100,
		Concurrency: 4,
		Phonemes:    []string{"a", "i", "u", "e", "o"},
		Voice: VoiceConfig{
			Source:     SourceGlottal,
			Pitch:      120,
			DurationMS: 1000,
			GlideMS:    400,
			Gain:       1.0,
			Peak:       0.9,
			Harmonics:  5,
		},
	}
}

func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return cfg, fmt.Errorf("config file not found: %w", err)
			}
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks a config that was built or modified in code
func (c Config) Validate() error {
	return validate(c)
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.OutputDir, "FORMANT_OUTPUT_DIR")
	overrideInt(&cfg.SampleRate, "FORMANT_SAMPLE_RATE")
	overrideInt(&cfg.OutputRate, "FORMANT_OUTPUT_RATE")
	overrideInt(&cfg.Concurrency, "FORMANT_CONCURRENCY")
	overrideStringSlice(&cfg.Phonemes, "FORMANT_PHONEMES")
	overrideString(&cfg.Voice.Source, "FORMANT_VOICE_SOURCE")
	overrideFloat(&cfg.Voice.Pitch, "FORMANT_VOICE_PITCH")
	overrideInt(&cfg.Voice.DurationMS, "FORMANT_VOICE_DURATION_MS")
	overrideInt(&cfg.Voice.GlideMS, "FORMANT_VOICE_GLIDE_MS")
	overrideFloat(&cfg.Voice.Gain, "FORMANT_VOICE_GAIN")
	overrideFloat(&cfg.Voice.Peak, "FORMANT_VOICE_PEAK")
	overrideInt(&cfg.Voice.Harmonics, "FORMANT_VOICE_HARMONICS")
	overrideFloat(&cfg.Voice.Flutter, "FORMANT_VOICE_FLUTTER")
}

func overrideString(target *string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func overrideInt(target *int, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			*target = parsed
		}
	}
}

func overrideStringSlice(target *[]string, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		parts := strings.Split(value, ",")
		var trimmed []string
		for _, p := range parts {
			if s := strings.TrimSpace(p); s != "" {
				trimmed = append(trimmed, s)
			}
		}
		if len(trimmed) > 0 {
			*target = trimmed
		}
	}
}

func overrideFloat(target *float64, envKey string) {
	if value, ok := os.LookupEnv(envKey); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			*target = parsed
		}
	}
}

func validate(cfg Config) error {
	if cfg.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if cfg.SampleRate <= 0 || cfg.SampleRate > math.MaxInt32 {
		return errors.New("sample_rate must be positive")
	}
	if cfg.OutputRate <= 0 || cfg.OutputRate > math.MaxInt32 {
		return errors.New("output_rate must be positive")
	}
	if cfg.Concurrency <= 0 {
		return errors.New("concurrency must be >= 1")
	}
	if len(cfg.Phonemes) == 0 {
		return errors.New("phonemes must not be empty")
	}
	switch cfg.Voice.Source {
	case SourceGlottal, SourceSine, SourceSquare, SourceHarmonic:
	default:
		return errors.New("voice.source must be one of glottal|sine|square|harmonic")
	}
	if !(cfg.Voice.Pitch > 0) || math.IsInf(cfg.Voice.Pitch, 0) {
		return errors.New("voice.pitch must be positive")
	}
	if cfg.Voice.DurationMS <= 0 {
		return errors.New("voice.duration_ms must be positive")
	}
	if cfg.Voice.GlideMS < 0 || cfg.Voice.GlideMS > cfg.Voice.DurationMS {
		return errors.New("voice.glide_ms must be between 0 and duration_ms")
	}
	if !(cfg.Voice.Peak > 0 && cfg.Voice.Peak <= 1) {
		return errors.New("voice.peak must be in (0, 1]")
	}
	if cfg.Voice.Source == SourceHarmonic && cfg.Voice.Harmonics < 1 {
		return errors.New("voice.harmonics must be >= 1 for the harmonic source")
	}
	if cfg.Voice.Flutter < 0 {
		return errors.New("voice.flutter must be >= 0")
	}
	return nil
}
