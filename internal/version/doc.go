// Package version holds the build metadata of the wake-gate binaries.
//
// Version, Commit and BuildTime are injected with ldflags; both binaries expose
// them through a `version` subcommand and the server logs them at startup.
package version
