// Package engine runs the wake-gate components on a single execution context.
//
// The Engine owns a clock.Loop, the coordinator with its sound channel,
// volume enforcer and puzzle gate, and the event bus. Its methods may be
// called from any goroutine: each one is marshalled onto the loop and returns
// a snapshot taken right after the command ran.
package engine
