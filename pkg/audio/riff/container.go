// ABOUTME: Decoded WAV container types
// ABOUTME: Format descriptor, sample block and the immutable container
package riff

import "github.com/Resonate-Protocol/formant-go/pkg/audio/decode"

// Audio format codes found in the fmt chunk
const (
	FormatPCM        = 1
	FormatIEEEFloat  = 3
	FormatALaw       = 6
	FormatMULaw      = 7
	FormatExtensible = 0xFFFE
)

const (
	// HeaderSize is the size of the canonical header written by the encoder
	HeaderSize = 44

	// fmtSize is the size of the fields every fmt chunk carries
	fmtSize = 16
)

var (
	tagRIFF = [4]byte{'R', 'I', 'F', 'F'}
	tagWAVE = [4]byte{'W', 'A', 'V', 'E'}
	tagFmt  = [4]byte{'f', 'm', 't', ' '}
	tagData = [4]byte{'d', 'a', 't', 'a'}
)

// Format is the fmt chunk of a WAV file
type Format struct {
	AudioFormat   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// Data is the data chunk of a WAV file
type Data struct {
	size  uint32
	bytes []byte
}

// Size returns the declared chunk size
func (d Data) Size() uint32 { return d.size }

// Len returns the number of payload bytes read
func (d Data) Len() int { return len(d.bytes) }

// Bytes returns the raw little-endian payload. Callers must not modify it.
func (d Data) Bytes() []byte { return d.bytes }

// Container is a decoded WAV file. It always holds exactly one Format and
// one Data chunk and is only produced by the decoder.
type Container struct {
	format Format
	data   Data
}

// Format returns the format descriptor
func (c *Container) Format() Format { return c.format }

// Data returns the sample block
func (c *Container) Data() Data { return c.data }

// Bytes returns the raw sample payload. Callers must not modify it.
func (c *Container) Bytes() []byte { return c.data.bytes }

// Frames returns the number of whole sample frames in the payload
func (c *Container) Frames() int {
	if c.format.BlockAlign == 0 {
		return 0
	}
	return len(c.data.bytes) / int(c.format.BlockAlign)
}

// Samples returns the payload as interleaved 16-bit samples
func (c *Container) Samples() []int16 {
	return decode.Int16(c.data.bytes)
}
