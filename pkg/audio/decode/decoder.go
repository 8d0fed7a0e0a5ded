// ABOUTME: Decoder interface definition
// ABOUTME: Common interface for PCM payload decoders
package decode

// Decoder decodes raw PCM payloads to float samples in [-1, 1]
type Decoder interface {
	// Decode converts PCM bytes to samples
	Decode(data []byte) ([]float64, error)

	// Close releases decoder resources
	Close() error
}
