// ABOUTME: Version and product constants
// ABOUTME: Reported in logs, manifests and the TUI header
package version

const (
	// Version is the release version
	Version = "0.1.0"

	// Product is the product name
	Product = "formant-go"

	// Manufacturer is the maintaining organization
	Manufacturer = "Resonate Protocol"
)
