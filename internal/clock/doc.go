// Package clock provides the time source and the single execution context of
// the engine.
//
// Loop runs posted functions one at a time on one goroutine; Loop.Clock
// delivers timer callbacks through it, so components never need locks.
// A stopped timer never runs its callback, even when the runtime timer had
// already fired and the callback was waiting in the queue. Fake is a manual
// clock for deterministic tests.
package clock
