// ABOUTME: RIFF/WAVE container codec package
// ABOUTME: Decodes and encodes PCM16 WAV files with strict chunk validation
// Package riff reads and writes the RIFF/WAVE container used to persist
// synthesized audio.
//
// The decoder scans chunks after the RIFF/WAVE header, tolerating unknown
// chunks, rejecting duplicate "fmt " or "data" chunks, honouring the RIFF
// pad byte, and stopping as soon as both required chunks have been seen.
// Only linear PCM with 16 bits per sample is accepted, with any channel
// count.
//
// The encoder writes the canonical 44-byte header followed by the
// little-endian sample payload.
//
// All failures wrap one of the sentinel errors (ErrIO, ErrBadHeader,
// ErrMissingChunk, ErrTruncated, ErrInvalid, ErrUnsupportedFormat) and can
// be tested with errors.Is. Unsupported formats are reported as
// *UnsupportedFormatError carrying the offending values.
//
// Example:
//
//	err := riff.EncodeMono("a.wav", pcm, 44100)
//	c, err := riff.Decode("a.wav")
//	fmt.Printf("%+v %d\n", c.Format(), c.Data().Len())
package riff
