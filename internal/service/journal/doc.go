// Package journal records ringing sessions from the engine event stream
// into the wake journal repository.
package journal
