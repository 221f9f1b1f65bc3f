// Package client implements the wake-gate CLI actions.
//
// Each action connects to the wake-gate server, performs one call (or
// follows the event stream for watch) and renders the result for a terminal.
package client
