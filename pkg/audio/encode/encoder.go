// ABOUTME: Encoder interface definition
// ABOUTME: Common interface for PCM payload encoders
package encode

// Encoder encodes float samples to a PCM payload
type Encoder interface {
	// Encode converts samples to encoded audio data
	Encode(samples []float64) ([]byte, error)

	// Close releases encoder resources
	Close() error
}
