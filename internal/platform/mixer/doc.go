// Package mixer changes the system output volume.
//
// Two effectors exist: one talks to the PulseAudio server directly (PipeWire
// included), the other shells out to the platform tool (osascript, pactl or
// amixer). Open picks one by name or, for "auto", by looking at the running
// processes.
package mixer
