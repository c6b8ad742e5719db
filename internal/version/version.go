// Package version carries build-time version metadata, injected through
// -ldflags at release time.
package version

import (
	"fmt"
	"runtime"
)

// These variables are set at build time using -ldflags.
var (
	// Version is the semantic version of this build.
	Version = "dev"
	// GitCommit is the git commit the binary was built from.
	GitCommit = "unknown"
	// BuildTime is the build timestamp.
	BuildTime = "unknown"
)

// String renders a one-line version summary.
func String() string {
	return fmt.Sprintf("verdant %s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
