package gnsyn

var (
	// Version of the gnsyn app, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
