// ABOUTME: WAV container encoder
// ABOUTME: Serializes interleaved PCM16 samples with the canonical 44-byte header
package riff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/Resonate-Protocol/formant-go/pkg/audio/encode"
)

// NewFormat derives a PCM16 format descriptor for the given rate and
// channel count, checking that every field fits its width.
func NewFormat(sampleRate uint32, channels uint16) (Format, error) {
	if channels < 1 {
		return Format{}, invalid("channel count must be at least 1")
	}

	blockAlign := uint32(channels) * 2
	if blockAlign > math.MaxUint16 {
		return Format{}, invalid(fmt.Sprintf("block align overflows for %d channels", channels))
	}

	byteRate := uint64(sampleRate) * uint64(blockAlign)
	if byteRate > math.MaxUint32 {
		return Format{}, invalid(fmt.Sprintf("byte rate overflows for %d Hz x %d channels", sampleRate, channels))
	}

	return Format{
		AudioFormat:   FormatPCM,
		Channels:      channels,
		SampleRate:    sampleRate,
		ByteRate:      uint32(byteRate),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: 16,
	}, nil
}

// Encode serializes interleaved samples into a WAV file image
func Encode(samples []int16, sampleRate uint32, channels uint16) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, samples, sampleRate, channels); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteTo writes interleaved samples as a WAV file to w
func WriteTo(w io.Writer, samples []int16, sampleRate uint32, channels uint16) error {
	format, err := NewFormat(sampleRate, channels)
	if err != nil {
		return err
	}

	if len(samples)%int(channels) != 0 {
		return invalid(fmt.Sprintf("%d samples do not divide into %d channels", len(samples), channels))
	}

	frames := uint64(len(samples) / int(channels))
	dataSize := frames * uint64(format.BlockAlign)
	if dataSize > math.MaxUint32-36 {
		return invalid(fmt.Sprintf("data size %d does not fit the size field", dataSize))
	}

	return writeContainer(w, format, encode.Int16(samples))
}

// writeContainer writes the header, payload and pad byte
func writeContainer(w io.Writer, format Format, payload []byte) error {
	dataSize := uint64(len(payload))
	pad := dataSize % 2
	total := 36 + dataSize + pad
	if total > math.MaxUint32 {
		return invalid(fmt.Sprintf("RIFF size %d does not fit the size field", total))
	}

	header := make([]byte, HeaderSize)
	copy(header[0:4], tagRIFF[:])
	binary.LittleEndian.PutUint32(header[4:8], uint32(total))
	copy(header[8:12], tagWAVE[:])

	copy(header[12:16], tagFmt[:])
	binary.LittleEndian.PutUint32(header[16:20], fmtSize)
	binary.LittleEndian.PutUint16(header[20:22], format.AudioFormat)
	binary.LittleEndian.PutUint16(header[22:24], format.Channels)
	binary.LittleEndian.PutUint32(header[24:28], format.SampleRate)
	binary.LittleEndian.PutUint32(header[28:32], format.ByteRate)
	binary.LittleEndian.PutUint16(header[32:34], format.BlockAlign)
	binary.LittleEndian.PutUint16(header[34:36], format.BitsPerSample)

	copy(header[36:40], tagData[:])
	binary.LittleEndian.PutUint32(header[40:44], uint32(dataSize))

	if _, err := w.Write(header); err != nil {
		return ioError(err)
	}
	if _, err := w.Write(payload); err != nil {
		return ioError(err)
	}
	if pad == 1 {
		if _, err := w.Write([]byte{0}); err != nil {
			return ioError(err)
		}
	}
	return nil
}

// WriteFile encodes samples and writes them to path. Nothing is written
// when validation fails.
func WriteFile(path string, samples []int16, sampleRate uint32, channels uint16) error {
	b, err := Encode(samples, sampleRate, channels)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return ioError(err)
	}
	return nil
}

// EncodeMono writes a single-channel WAV file
func EncodeMono(path string, samples []int16, sampleRate uint32) error {
	return WriteFile(path, samples, sampleRate, 1)
}

// EncodeStereo writes a two-channel WAV file from interleaved L/R samples
func EncodeStereo(path string, interleaved []int16, sampleRate uint32) error {
	return WriteFile(path, interleaved, sampleRate, 2)
}
