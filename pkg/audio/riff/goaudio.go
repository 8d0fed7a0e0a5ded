// ABOUTME: Interop with the go-audio ecosystem
// ABOUTME: Converts between decoded containers and go-audio IntBuffers
package riff

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// IntBuffer returns the decoded samples as a go-audio buffer
func (c *Container) IntBuffer() *goaudio.IntBuffer {
	pcm := c.Samples()
	data := make([]int, len(pcm))
	for i, s := range pcm {
		data[i] = int(s)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: int(c.format.Channels),
			SampleRate:  int(c.format.SampleRate),
		},
		Data:           data,
		SourceBitDepth: 16,
	}
}

// EncodeIntBuffer serializes a go-audio buffer holding 16-bit samples.
// Values outside the 16-bit range are rejected.
func EncodeIntBuffer(buf *goaudio.IntBuffer) ([]byte, error) {
	if buf == nil || buf.Format == nil {
		return nil, invalid("buffer has no format")
	}
	if buf.Format.NumChannels < 1 || buf.Format.NumChannels > math.MaxUint16 {
		return nil, invalid(fmt.Sprintf("unsupported channel count %d", buf.Format.NumChannels))
	}
	if buf.Format.SampleRate < 0 || uint64(buf.Format.SampleRate) > math.MaxUint32 {
		return nil, invalid(fmt.Sprintf("unsupported sample rate %d", buf.Format.SampleRate))
	}

	pcm := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		if v < math.MinInt16 || v > math.MaxInt16 {
			return nil, invalid(fmt.Sprintf("sample %d value %d exceeds 16 bits", i, v))
		}
		pcm[i] = int16(v)
	}

	return Encode(pcm, uint32(buf.Format.SampleRate), uint16(buf.Format.NumChannels))
}
