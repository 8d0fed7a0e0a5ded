// ABOUTME: Error taxonomy for the WAV codec
// ABOUTME: Sentinel errors plus a typed error for unsupported formats
package riff

import (
	"errors"
	"fmt"
)

var (
	// ErrIO wraps an underlying storage failure
	ErrIO = errors.New("riff: I/O error")

	// ErrBadHeader indicates a wrong RIFF/WAVE literal or an undersized fmt chunk
	ErrBadHeader = errors.New("riff: bad WAV header")

	// ErrMissingChunk indicates the fmt or data chunk was never found
	ErrMissingChunk = errors.New("riff: missing required chunk")

	// ErrTruncated indicates the buffer ended before a required field
	ErrTruncated = errors.New("riff: file is truncated")

	// ErrInvalid indicates a structural violation such as a duplicate chunk
	// or a size that does not fit the format's fields
	ErrInvalid = errors.New("riff: invalid WAV")

	// ErrUnsupportedFormat indicates a well-formed file in an encoding other than PCM16
	ErrUnsupportedFormat = errors.New("riff: unsupported WAV format")
)

// UnsupportedFormatError reports the format values a decoder rejected
type UnsupportedFormatError struct {
	AudioFormat   uint16
	BitsPerSample uint16
	Channels      uint16
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%v: audio_format=%d, bits_per_sample=%d, channels=%d",
		ErrUnsupportedFormat, e.AudioFormat, e.BitsPerSample, e.Channels)
}

// Is reports whether target is ErrUnsupportedFormat
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

func ioError(err error) error {
	return fmt.Errorf("%w: %w", ErrIO, err)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalid, msg)
}
