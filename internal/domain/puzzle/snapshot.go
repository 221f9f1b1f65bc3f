package puzzle

import "github.com/google/uuid"

// TileView is the observer-facing form of a tile. Correct is only reported
// for face-up tiles or once the round is resolved, so snapshots never leak
// the answer during the interactive phase.
type TileView struct {
	// ID is the tile identity used by taps.
	ID uuid.UUID
	// Revealed reports whether the tile is face up.
	Revealed bool
	// Correct is true for a marked tile, hidden while the tile is face down and the round unresolved.
	Correct bool
}

// Snapshot is a read-only copy of a round for observers.
type Snapshot struct {
	// Generation identifies the round; it grows with every new round.
	Generation uint64
	// Phase is the round stage.
	Phase Phase
	// Outcome is set once the round is resolved.
	Outcome Outcome
	// Judging is true while a verdict delay is pending and taps are ignored.
	Judging bool
	// Accent is the round colour.
	Accent Color
	// Tiles lists the 25 tiles in reading order.
	Tiles []TileView
}

// Snapshot copies the round into its observer-facing form.
func (r *Round) Snapshot() *Snapshot {
	s := &Snapshot{
		Generation: r.Generation,
		Phase:      r.Phase,
		Outcome:    r.Outcome,
		Judging:    r.Judging,
		Accent:     r.Accent,
		Tiles:      make([]TileView, len(r.Tiles)),
	}

	for i, tile := range r.Tiles {
		s.Tiles[i] = TileView{
			ID:       tile.ID,
			Revealed: tile.Revealed,
			Correct:  tile.Correct && (tile.Revealed || r.Phase == PhaseResolved),
		}
	}

	return s
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	if s == nil {
		return nil
	}

	cloned := *s
	cloned.Tiles = append([]TileView(nil), s.Tiles...)

	return &cloned
}
