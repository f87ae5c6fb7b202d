package hime

// Version is the core library's semantic version, reported to hosts via
// GetVersion() (spec.md §6).
const Version = "0.1.0"

// GetVersion returns the core library's version string.
func GetVersion() string { return Version }
