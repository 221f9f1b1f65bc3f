// Package sound rotates the two alarm cues while the alarm rings.
//
// The primary cue plays first for PrimaryFor, then the secondary cue for
// SecondaryFor, and so on until Stop. Exactly one cue is audible at a time
// and at most one switch timer is pending. A cue that cannot be played is
// reported once per activation; the rotation continues silently.
package sound
