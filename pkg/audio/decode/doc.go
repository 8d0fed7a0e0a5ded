// ABOUTME: PCM payload decoder package
// ABOUTME: Converts little-endian PCM16 bytes to int16 or float samples
// Package decode converts raw PCM sample payloads back to samples.
//
// Supports: PCM 16-bit little-endian, any channel count (interleaved).
//
// The payload usually comes from a decoded RIFF/WAVE container and is used
// for inspection and round-trip checks; it is not part of the synthesis path.
//
// Example:
//
//	decoder, err := decode.NewPCM(format)
//	samples, err := decoder.Decode(container.Bytes())
package decode
