// ABOUTME: Audio type definitions
// ABOUTME: Defines float sample buffers and PCM16 quantization helpers
package audio

import (
	"math"
	"time"
)

const (
	// 16-bit PCM range constants
	Max16Bit = 32767
	Min16Bit = -32768
)

// Format describes a PCM stream
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Buffer holds synthesized samples in the nominal [-1, 1] range
type Buffer struct {
	Samples []float64 // interleaved when Channels > 1
	Format  Format
}

// Frames returns the number of sample frames in the buffer
func (b Buffer) Frames() int {
	if b.Format.Channels <= 0 {
		return 0
	}
	return len(b.Samples) / b.Format.Channels
}

// Duration returns the playback length of the buffer
func (b Buffer) Duration() time.Duration {
	if b.Format.SampleRate <= 0 {
		return 0
	}
	return time.Duration(b.Frames()) * time.Second / time.Duration(b.Format.SampleRate)
}

// Clamp limits a sample to [-1, 1]. NaN maps to silence.
func Clamp(sample float64) float64 {
	switch {
	case math.IsNaN(sample):
		return 0
	case sample > 1:
		return 1
	case sample < -1:
		return -1
	}
	return sample
}

// FloatToInt16 clamps a sample and scales it to the 16-bit range,
// rounding half away from zero.
func FloatToInt16(sample float64) int16 {
	return int16(math.Round(Clamp(sample) * Max16Bit))
}

// Int16ToFloat converts a 16-bit sample back to [-1, 1]
func Int16ToFloat(sample int16) float64 {
	if sample == Min16Bit {
		return -1
	}
	return float64(sample) / Max16Bit
}

// Quantize converts a float buffer to 16-bit PCM samples
func Quantize(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, s := range samples {
		out[i] = FloatToInt16(s)
	}
	return out
}

// Peak returns the largest absolute sample value
func Peak(samples []float64) float64 {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	return peak
}

// RMS returns the root-mean-square level of the samples
func RMS(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range samples {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(samples)))
}

// ApplyGain scales samples in place
func ApplyGain(samples []float64, gain float64) {
	for i := range samples {
		samples[i] *= gain
	}
}

// Normalize scales samples in place so the peak equals target.
// Silent buffers are left untouched.
func Normalize(samples []float64, target float64) {
	peak := Peak(samples)
	if peak == 0 {
		return
	}
	ApplyGain(samples, target/peak)
}
