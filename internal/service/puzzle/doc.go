// Package puzzle runs the memory puzzle that gates dismissal of a ringing alarm.
//
// A round shows its correct tiles for the preview window, conceals them and
// waits for taps. A wrong tap resolves the round as lost after LoseDelay; the
// last correct tap resolves it as won after WinDelay. The outcome is reported
// to a Listener. Every delayed callback carries the round generation and is
// dropped if the round was replaced or discarded meanwhile.
package puzzle
