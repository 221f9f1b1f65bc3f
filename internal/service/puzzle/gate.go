package puzzle

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/clock"
	domain "github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/logger"
)

// Stock round timings.
const (
	DefaultPreviewWindow = 3 * time.Second
	DefaultLoseDelay     = 1500 * time.Millisecond
	DefaultWinDelay      = 750 * time.Millisecond
)

// Listener receives round outcomes.
type Listener interface {
	// PuzzleWon is called once a round resolves as won.
	PuzzleWon()
	// PuzzleLost is called once a round resolves as lost.
	PuzzleLost()
}

// Option configures a Gate.
type Option func(*Gate)

// WithPreviewWindow overrides how long correct tiles stay visible.
func WithPreviewWindow(d time.Duration) Option {
	return func(g *Gate) {
		g.previewWindow = d
	}
}

// WithLoseDelay overrides the verdict delay after a wrong tap.
func WithLoseDelay(d time.Duration) Option {
	return func(g *Gate) {
		g.loseDelay = d
	}
}

// WithWinDelay overrides the verdict delay after the last correct tap.
func WithWinDelay(d time.Duration) Option {
	return func(g *Gate) {
		g.winDelay = d
	}
}

// WithRand sets the random source used to lay out rounds.
func WithRand(rng *rand.Rand) Option {
	return func(g *Gate) {
		g.rng = rng
	}
}

// WithOnChange registers a hook called with a snapshot after every round
// change, or with nil when the round is discarded.
func WithOnChange(f func(*domain.Snapshot)) Option {
	return func(g *Gate) {
		g.onChange = f
	}
}

// Gate owns the current round and its single pending timer.
// It must only be used from the engine's execution context.
type Gate struct {
	// clock arms preview and verdict timers.
	clock clock.Clock
	// listener receives outcomes.
	listener Listener
	// log is the component logger.
	log *zap.SugaredLogger
	// rng lays out rounds.
	rng *rand.Rand
	// onChange is the optional change hook.
	onChange func(*domain.Snapshot)
	// previewWindow is how long correct tiles stay visible.
	previewWindow time.Duration
	// loseDelay is the verdict delay after a wrong tap.
	loseDelay time.Duration
	// winDelay is the verdict delay after the last correct tap.
	winDelay time.Duration
	// round is the current round, nil when none.
	round *domain.Round
	// generation is the generation of the latest round or discard.
	generation uint64
	// timer is the pending preview or verdict timer.
	timer clock.Timer
}

// NewGate creates a gate without a round.
func NewGate(ctx context.Context, clk clock.Clock, listener Listener, opts ...Option) *Gate {
	g := &Gate{
		clock:         clk,
		listener:      listener,
		log:           logger.FromContext(logger.WithName(ctx, "puzzle")),
		previewWindow: DefaultPreviewWindow,
		loseDelay:     DefaultLoseDelay,
		winDelay:      DefaultWinDelay,
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.rng == nil {
		g.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // Not security sensitive.
	}

	return g
}

// NewRound replaces the current round with a fresh one and starts its preview.
func (g *Gate) NewRound() {
	g.timer = clock.Stop(g.timer)
	g.generation++

	g.round = domain.NewRound(g.generation, g.rng)
	g.round.StartPreview()
	g.notify()

	g.log.Debugw("Round started", "generation", g.generation)

	g.arm(g.previewWindow, func() {
		g.round.StartInteractive()
		g.notify()
	})
}

// Tap forwards a tap to the current round and schedules the verdict when the
// tap decides it.
func (g *Gate) Tap(id uuid.UUID) domain.TapResult {
	if g.round == nil {
		return domain.TapIgnored
	}

	result := g.round.Tap(id)

	switch result {
	case domain.TapIgnored:
		g.log.Debugw("Tap ignored", "tile", id, "phase", g.round.Phase, "judging", g.round.Judging)

		return result
	case domain.TapWrong:
		g.arm(g.loseDelay, func() {
			g.resolve(domain.OutcomeLost)
		})
	case domain.TapComplete:
		g.arm(g.winDelay, func() {
			g.resolve(domain.OutcomeWon)
		})
	case domain.TapCorrect:
	}

	g.notify()

	return result
}

// Discard drops the current round and any pending timer.
func (g *Gate) Discard() {
	g.timer = clock.Stop(g.timer)
	g.generation++

	if g.round == nil {
		return
	}

	g.round = nil
	g.notify()
}

// Current returns a snapshot of the current round, or nil.
func (g *Gate) Current() *domain.Snapshot {
	if g.round == nil {
		return nil
	}

	return g.round.Snapshot()
}

// Generation returns the generation of the latest round or discard.
func (g *Gate) Generation() uint64 {
	return g.generation
}

func (g *Gate) resolve(outcome domain.Outcome) {
	g.round.Resolve(outcome)
	g.notify()

	g.log.Debugw("Round resolved", "generation", g.round.Generation, "outcome", outcome)

	switch outcome {
	case domain.OutcomeWon:
		g.listener.PuzzleWon()
	case domain.OutcomeLost:
		g.listener.PuzzleLost()
	case domain.OutcomeNone:
	}
}

// arm replaces the pending timer with one bound to the current generation.
func (g *Gate) arm(d time.Duration, f func()) {
	g.timer = clock.Stop(g.timer)

	generation := g.generation
	g.timer = g.clock.AfterFunc(d, func() {
		if generation != g.generation || g.round == nil {
			g.log.Debugw("Dropped stale round callback", "generation", generation, "current", g.generation)

			return
		}

		g.timer = nil
		f()
	})
}

func (g *Gate) notify() {
	if g.onChange != nil {
		g.onChange(g.Current())
	}
}
