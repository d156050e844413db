// Package version holds build metadata for the tim binary.
package version

import "fmt"

// Name is the product name shown by --version.
const Name = "Tim Site Generator"

// Version contains the application version information.
// This should be set via build-time ldflags in production:
// go build -ldflags "-X github.com/timsite/tim/internal/version.Version=v1.2.0".
var Version = "dev"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the version line printed by --version.
func String() string {
	return fmt.Sprintf("%s version: %s (commit %s, built %s)", Name, Version, GitCommit, BuildTime)
}
