// Package version holds build information set via -ldflags.
package version

var (
	// Version is the release version of the service
	Version = "1.0.0"
	// Commit is the git commit the binary was built from
	Commit = "unknown"
)
