// ABOUTME: WAV container decoder
// ABOUTME: Scans RIFF chunks for fmt and data and validates PCM16
package riff

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Decode reads and decodes the WAV file at path
func Decode(path string) (*Container, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, ioError(err)
	}
	return DecodeBytes(buf)
}

// DecodeReader reads r to the end and decodes it
func DecodeReader(r io.Reader) (*Container, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError(err)
	}
	return DecodeBytes(buf)
}

// DecodeBytes decodes an in-memory WAV file. The returned container does
// not alias buf.
func DecodeBytes(buf []byte) (*Container, error) {
	c := &cursor{buf: buf}

	id, err := c.fourCC()
	if err != nil {
		return nil, err
	}
	if id != tagRIFF {
		return nil, fmt.Errorf("%w: RIFF missing", ErrBadHeader)
	}

	// The declared size is not checked against the buffer here; a short
	// buffer shows up as truncation once a chunk overruns it.
	riffSize, err := c.u32()
	if err != nil {
		return nil, err
	}

	id, err = c.fourCC()
	if err != nil {
		return nil, err
	}
	if id != tagWAVE {
		return nil, fmt.Errorf("%w: WAVE missing", ErrBadHeader)
	}

	var (
		format *Format
		data   *Data
	)

	for c.remaining() >= 8 {
		id, err := c.fourCC()
		if err != nil {
			return nil, err
		}
		size, err := c.u32()
		if err != nil {
			return nil, err
		}
		start := c.off

		switch id {
		case tagFmt:
			if format != nil {
				return nil, invalid("duplicate fmt chunk")
			}
			f, err := parseFormat(c, size)
			if err != nil {
				return nil, err
			}
			format = &f
		case tagData:
			if data != nil {
				return nil, invalid("duplicate data chunk")
			}
			d, err := parseData(c, size)
			if err != nil {
				return nil, err
			}
			data = &d
		default:
			if err := c.skip(size); err != nil {
				return nil, err
			}
		}

		consumed := uint64(c.off - start)
		if consumed < uint64(size) {
			if err := c.skip(size - uint32(consumed)); err != nil {
				return nil, err
			}
		} else if consumed > uint64(size) {
			return nil, invalid("overread chunk payload")
		}

		// Chunks are word aligned
		if size%2 == 1 {
			if err := c.skip(1); err != nil {
				return nil, err
			}
		}

		if format != nil && data != nil {
			break
		}
	}

	if format == nil || data == nil {
		if uint64(len(buf)) < 8+uint64(riffSize) {
			return nil, fmt.Errorf("%w: buffer holds %d of %d declared bytes", ErrTruncated, len(buf), 8+uint64(riffSize))
		}
		if format == nil {
			return nil, fmt.Errorf("%w: fmt ", ErrMissingChunk)
		}
		return nil, fmt.Errorf("%w: data", ErrMissingChunk)
	}

	if format.AudioFormat != FormatPCM || format.BitsPerSample != 16 {
		return nil, &UnsupportedFormatError{
			AudioFormat:   format.AudioFormat,
			BitsPerSample: format.BitsPerSample,
			Channels:      format.Channels,
		}
	}

	return &Container{format: *format, data: *data}, nil
}

func parseFormat(c *cursor, size uint32) (Format, error) {
	var f Format
	if size < fmtSize {
		return f, fmt.Errorf("%w: fmt chunk too small (%d bytes)", ErrBadHeader, size)
	}

	var err error
	if f.AudioFormat, err = c.u16(); err != nil {
		return f, err
	}
	if f.Channels, err = c.u16(); err != nil {
		return f, err
	}
	if f.SampleRate, err = c.u32(); err != nil {
		return f, err
	}
	if f.ByteRate, err = c.u32(); err != nil {
		return f, err
	}
	if f.BlockAlign, err = c.u16(); err != nil {
		return f, err
	}
	if f.BitsPerSample, err = c.u16(); err != nil {
		return f, err
	}

	// Extension fields (cbSize and beyond) are skipped
	if size > fmtSize {
		if err := c.skip(size - fmtSize); err != nil {
			return f, err
		}
	}
	return f, nil
}

func parseData(c *cursor, size uint32) (Data, error) {
	payload, err := c.next(size)
	if err != nil {
		return Data{}, err
	}
	return Data{size: size, bytes: bytes.Clone(payload)}, nil
}
