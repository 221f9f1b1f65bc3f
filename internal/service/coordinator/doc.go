// Package coordinator owns the alarm lifecycle.
//
// The Coordinator is the only writer of the alarm state. It arms the wake
// and snooze timers, starts and stops the sound channel and the volume
// enforcer, runs the puzzle gate while ringing and publishes an event for
// every transition. All methods must be called from the engine's execution
// context; timer callbacks carry an epoch and are dropped once the state they
// were armed for has been left.
package coordinator
