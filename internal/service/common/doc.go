// Package common holds helpers shared by the wake-gate CLI and the integration tests.
//
// Client wraps the generated gRPC stub with per-call timeouts, event streaming and
// a health wait; DetectActor and FormatActor attach and render who issued a command.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
