// Package puzzle holds the memory puzzle round: a 5x5 grid where seven tiles
// are correct, shown briefly, then hidden until the player finds them again.
//
// A Round only knows its own rules. Timing (preview window, judging delays)
// belongs to the gate in internal/service/puzzle.
package puzzle
