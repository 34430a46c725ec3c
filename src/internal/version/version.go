// FILE: wescoco/src/internal/version/version.go
package version

import "fmt"

var (
	// Set at compile time via -ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// String returns the full version description
func String() string {
	return fmt.Sprintf("wescoco %s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}

// Short returns just the version tag
func Short() string {
	return Version
}
