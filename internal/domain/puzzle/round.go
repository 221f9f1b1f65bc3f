package puzzle

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
)

const (
	// TileCount is the number of tiles in a round (a 5x5 grid).
	TileCount = 25
	// CorrectCount is the number of tiles the player has to memorize.
	CorrectCount = 7
	// GridWidth is the number of tiles per grid row.
	GridWidth = 5
)

// Phase is the lifecycle state of a round.
type Phase int

const (
	// PhaseSetup is a freshly generated round, nothing shown yet.
	PhaseSetup Phase = iota
	// PhasePreview shows the correct tiles for memorization.
	PhasePreview
	// PhaseInteractive accepts taps.
	PhaseInteractive
	// PhaseResolved is terminal; the round never changes again.
	PhaseResolved
)

// String returns a lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePreview:
		return "preview"
	case PhaseInteractive:
		return "interactive"
	case PhaseResolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a resolved round.
type Outcome int

const (
	// OutcomeNone means the round is not resolved yet.
	OutcomeNone Outcome = iota
	// OutcomeWon means all correct tiles were revealed without a mistake.
	OutcomeWon
	// OutcomeLost means an incorrect tile was tapped.
	OutcomeLost
)

// String returns a lowercase name of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

// TapResult describes how a round reacted to a tap.
type TapResult int

const (
	// TapIgnored means the tap had no effect.
	TapIgnored TapResult = iota
	// TapCorrect revealed a correct tile, more remain.
	TapCorrect
	// TapComplete revealed the last correct tile.
	TapComplete
	// TapWrong revealed an incorrect tile.
	TapWrong
)

// String returns a lowercase name of the result.
func (r TapResult) String() string {
	switch r {
	case TapIgnored:
		return "ignored"
	case TapCorrect:
		return "correct"
	case TapComplete:
		return "complete"
	case TapWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Color is an RGB accent used to paint correct tiles of a round.
type Color struct {
	R, G, B uint8
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Tile is one cell of the grid.
type Tile struct {
	// ID is the opaque identity used by taps.
	ID uuid.UUID
	// Revealed reports whether the tile is face up.
	Revealed bool
	// Correct is fixed at round creation.
	Correct bool
}

// Round is one attempt at the memory puzzle.
type Round struct {
	// Generation identifies the round; it increases with every new round.
	Generation uint64
	// Tiles holds the grid in row-major order.
	Tiles [TileCount]Tile
	// Phase is the round lifecycle state.
	Phase Phase
	// Outcome is set once the round is resolved.
	Outcome Outcome
	// Judging is set while a tap awaits its delayed verdict.
	Judging bool
	// Accent is the pastel color of the round.
	Accent Color
}

// NewRound builds a round with CorrectCount correct tiles picked uniformly
// without replacement from TileCount positions.
func NewRound(generation uint64, rng *rand.Rand) *Round {
	r := &Round{
		Generation: generation,
		Phase:      PhaseSetup,
		Accent:     pastel(rng),
	}

	for i := range r.Tiles {
		r.Tiles[i].ID = uuid.New()
	}

	for _, idx := range rng.Perm(TileCount)[:CorrectCount] {
		r.Tiles[idx].Correct = true
	}

	return r
}

// pastel picks each channel from [150,255].
func pastel(rng *rand.Rand) Color {
	channel := func() uint8 {
		return uint8(150 + rng.IntN(106)) //nolint:gosec // Bounded to [150,255].
	}

	return Color{R: channel(), G: channel(), B: channel()}
}

// StartPreview flips the correct tiles face up.
func (r *Round) StartPreview() {
	if r.Phase != PhaseSetup {
		return
	}

	for i := range r.Tiles {
		r.Tiles[i].Revealed = r.Tiles[i].Correct
	}

	r.Phase = PhasePreview
}

// StartInteractive conceals every tile and starts accepting taps.
func (r *Round) StartInteractive() {
	if r.Phase != PhasePreview {
		return
	}

	for i := range r.Tiles {
		r.Tiles[i].Revealed = false
	}

	r.Phase = PhaseInteractive
}

// Index returns the grid position of the tile with the given id, or -1.
func (r *Round) Index(id uuid.UUID) int {
	for i := range r.Tiles {
		if r.Tiles[i].ID == id {
			return i
		}
	}

	return -1
}

// Tap reveals the tile with the given id. Taps outside the interactive phase,
// while judging, on unknown tiles or on already revealed tiles are ignored.
// A wrong or completing tap puts the round into judging until Resolve.
func (r *Round) Tap(id uuid.UUID) TapResult {
	if r.Phase != PhaseInteractive || r.Judging {
		return TapIgnored
	}

	idx := r.Index(id)
	if idx < 0 || r.Tiles[idx].Revealed {
		return TapIgnored
	}

	r.Tiles[idx].Revealed = true

	if !r.Tiles[idx].Correct {
		r.Judging = true

		return TapWrong
	}

	if !r.AllCorrectRevealed() {
		return TapCorrect
	}

	r.Judging = true

	return TapComplete
}

// AllCorrectRevealed reports whether every correct tile is face up.
func (r *Round) AllCorrectRevealed() bool {
	for i := range r.Tiles {
		if r.Tiles[i].Correct && !r.Tiles[i].Revealed {
			return false
		}
	}

	return true
}

// Resolve ends the round with the given outcome. Resolved rounds are final.
func (r *Round) Resolve(outcome Outcome) {
	if r.Phase == PhaseResolved {
		return
	}

	r.Phase = PhaseResolved
	r.Outcome = outcome
	r.Judging = false
}

// CorrectIDs returns the ids of the correct tiles in grid order.
func (r *Round) CorrectIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, CorrectCount)

	for i := range r.Tiles {
		if r.Tiles[i].Correct {
			ids = append(ids, r.Tiles[i].ID)
		}
	}

	return ids
}
