// Package contentsync holds application-wide metadata.
package contentsync

var (
	// Version is set during build by ldflags.
	Version = "v0.1.0"

	// Build is a timestamp set during build by ldflags.
	Build = "n/a"
)
