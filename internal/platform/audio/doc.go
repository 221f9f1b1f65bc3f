// Package audio turns the alarm cues into looping players on the local sound
// output.
//
// The cues are synthesized in memory: a wristwatch-style beeping for the
// primary cue and an electric bell for the secondary one. On Linux playback
// goes straight to the PulseAudio (or PipeWire) server; elsewhere it goes
// through oto.
package audio
