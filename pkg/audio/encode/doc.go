// ABOUTME: PCM payload encoder package
// ABOUTME: Provides the Encoder interface and the PCM16 implementation
// Package encode converts samples to PCM16 wire bytes.
//
// Float samples are clamped and quantized with audio.FloatToInt16 before
// being written little-endian. Int16 writes already quantized samples.
//
// Example:
//
//	encoder, err := encode.NewPCM(format)
//	data, err := encoder.Encode(samples)
package encode
