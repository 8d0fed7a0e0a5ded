// ABOUTME: PCM audio decoder
// ABOUTME: Decodes 16-bit little-endian PCM to int16 and float samples
package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/Resonate-Protocol/formant-go/pkg/audio"
)

// PCMDecoder decodes PCM16 audio
type PCMDecoder struct {
	channels int
}

// NewPCM creates a new PCM decoder
func NewPCM(format audio.Format) (Decoder, error) {
	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}
	if format.Channels < 1 {
		return nil, fmt.Errorf("invalid channel count: %d", format.Channels)
	}

	return &PCMDecoder{
		channels: format.Channels,
	}, nil
}

// Decode converts PCM16 bytes to float samples.
// The payload must hold whole frames.
func (d *PCMDecoder) Decode(data []byte) ([]float64, error) {
	frameBytes := d.channels * 2
	if len(data)%frameBytes != 0 {
		return nil, fmt.Errorf("payload of %d bytes is not a whole number of %d-byte frames", len(data), frameBytes)
	}

	pcm := Int16(data)
	samples := make([]float64, len(pcm))
	for i, s := range pcm {
		samples[i] = audio.Int16ToFloat(s)
	}
	return samples, nil
}

// Close releases resources
func (d *PCMDecoder) Close() error {
	return nil
}

// Int16 converts little-endian PCM16 bytes to samples.
// A trailing odd byte is ignored.
func Int16(data []byte) []int16 {
	numSamples := len(data) / 2
	samples := make([]int16, numSamples)
	for i := 0; i < numSamples; i++ {
		samples[i] = int16(binary.LittleEndian.Uint16(data[i*2:]))
	}
	return samples
}
