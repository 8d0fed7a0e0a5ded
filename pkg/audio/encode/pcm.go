// ABOUTME: PCM audio encoder
// ABOUTME: Encodes float and int16 samples to 16-bit little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/Resonate-Protocol/formant-go/pkg/audio"
)

// PCMEncoder encodes PCM16 audio
type PCMEncoder struct {
	channels int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}
	if format.Channels < 1 {
		return nil, fmt.Errorf("invalid channel count: %d", format.Channels)
	}

	return &PCMEncoder{
		channels: format.Channels,
	}, nil
}

// Encode quantizes interleaved float samples to PCM16 bytes
func (e *PCMEncoder) Encode(samples []float64) ([]byte, error) {
	if len(samples)%e.channels != 0 {
		return nil, fmt.Errorf("%d samples do not divide into %d channels", len(samples), e.channels)
	}
	return Int16(audio.Quantize(samples)), nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}

// Int16 writes samples as little-endian PCM16 bytes
func Int16(samples []int16) []byte {
	output := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(s))
	}
	return output
}
