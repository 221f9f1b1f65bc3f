// Package alarm contains the core domain types for the alarm lifecycle.
//
// It defines Phase (idle, scheduled, ringing, snoozed), State (the single
// alarm status owned by the coordinator) and Actor (who issued a command),
// with Clone helpers to avoid leaking internal references, plus the wake time
// arithmetic used by scheduling.
package alarm
