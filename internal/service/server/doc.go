// Package server runs the wake-gate server process: it loads settings, opens
// the sound output and the volume mixer, starts the engine with its journal
// and sleep inhibitor, and serves the gRPC API until the context ends.
package server
