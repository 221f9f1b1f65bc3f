// Package power keeps the machine awake while an alarm is pending.
//
// The Inhibitor holds an OS sleep inhibitor by running a long-lived helper
// process (systemd-inhibit on Linux, caffeinate on macOS) and releases it by
// stopping that process.
package power
