package version

import "fmt"

var (
	// Version is the release of the build, set with -ldflags "-X ...version.Version=...".
	Version = "0.1.0"
	// Commit is the short git SHA of the build (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp (or "unknown").
	BuildTime = "unknown"
)

// Short returns the bare release string.
func Short() string {
	return Version
}

// Full renders the release, commit and build time on one line.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildTime)
}

// Fields returns the build metadata as key-value pairs for structured logs.
func Fields() []any {
	return []any{"version", Version, "commit", Commit, "build_time", BuildTime}
}
