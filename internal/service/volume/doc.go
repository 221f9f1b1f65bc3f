// Package volume keeps the system output loud while the alarm rings.
//
// After an initial delay the Enforcer ramps the output volume from Floor to
// Target in equal steps, then re-asserts Target every HoldInterval until it is
// stopped. The system volume itself is changed through an Effector, so the
// package never talks to the OS directly.
package volume
