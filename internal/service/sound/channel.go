package sound

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/clock"
	"github.com/oshokin/wake-gate/internal/logger"
)

const (
	// DefaultPrimaryFor is how long the primary cue plays before switching.
	DefaultPrimaryFor = 5 * time.Minute
	// DefaultSecondaryFor is how long the secondary cue plays before switching back.
	DefaultSecondaryFor = time.Minute
)

// ErrCueUnavailable is reported when a cue has no player or fails to start.
var ErrCueUnavailable = errors.New("sound cue unavailable")

// Cue selects one of the alarm sounds.
type Cue uint8

const (
	// CueNone means the channel is silent.
	CueNone Cue = iota
	// CuePrimary is the wristwatch beeping.
	CuePrimary
	// CueSecondary is the bell.
	CueSecondary
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CuePrimary:
		return "primary"
	case CueSecondary:
		return "secondary"
	default:
		return "none"
	}
}

// Player plays one looping cue. Calls happen on the engine loop and must
// return promptly; the engine queues blocking players to a worker.
type Player interface {
	// Play starts the cue from the beginning, looping until Stop.
	Play() error
	// Stop silences the cue. Stopping a silent player is a no-op.
	Stop()
}

// Settings controls the rotation periods.
type Settings struct {
	// PrimaryFor is the primary cue period.
	PrimaryFor time.Duration
	// SecondaryFor is the secondary cue period.
	SecondaryFor time.Duration
}

// DefaultSettings returns the stock rotation.
func DefaultSettings() Settings {
	return Settings{
		PrimaryFor:   DefaultPrimaryFor,
		SecondaryFor: DefaultSecondaryFor,
	}
}

// Channel alternates the primary and secondary cues.
// It must only be used from the engine's execution context.
type Channel struct {
	// clock arms switch timers.
	clock clock.Clock
	// players holds the player of each cue; entries may be nil.
	players map[Cue]Player
	// settings holds the rotation periods.
	settings Settings
	// log is the component logger.
	log *zap.SugaredLogger
	// current is the audible cue.
	current Cue
	// timer is the pending switch.
	timer clock.Timer
	// generation invalidates switch callbacks of earlier activations.
	generation uint64
	// reported remembers cues already logged as unavailable in this activation.
	reported map[Cue]bool
}

// NewChannel creates a silent channel. Non-positive periods fall back to the defaults.
func NewChannel(ctx context.Context, clk clock.Clock, primary, secondary Player, settings Settings) *Channel {
	if settings.PrimaryFor <= 0 {
		settings.PrimaryFor = DefaultPrimaryFor
	}

	if settings.SecondaryFor <= 0 {
		settings.SecondaryFor = DefaultSecondaryFor
	}

	return &Channel{
		clock: clk,
		players: map[Cue]Player{
			CuePrimary:   primary,
			CueSecondary: secondary,
		},
		settings: settings,
		log:      logger.FromContext(logger.WithName(ctx, "sound")),
		reported: make(map[Cue]bool),
	}
}

// Start silences everything and begins the rotation with the primary cue.
func (c *Channel) Start() {
	c.halt()
	clear(c.reported)

	c.switchTo(CuePrimary, c.generation)
}

// Stop silences both cues and drops the pending switch. It is idempotent.
func (c *Channel) Stop() {
	c.halt()
}

// Current returns the audible cue.
func (c *Channel) Current() Cue {
	return c.current
}

// Active reports whether the rotation is running.
func (c *Channel) Active() bool {
	return c.current != CueNone
}

func (c *Channel) halt() {
	c.timer = clock.Stop(c.timer)
	c.generation++
	c.current = CueNone

	c.stopPlayer(CuePrimary)
	c.stopPlayer(CueSecondary)
}

func (c *Channel) switchTo(cue Cue, generation uint64) {
	if generation != c.generation {
		c.log.Debugw("Dropped stale cue switch", "cue", cue, "generation", generation)

		return
	}

	c.timer = clock.Stop(c.timer)

	next, period := CueSecondary, c.settings.PrimaryFor
	if cue == CueSecondary {
		next, period = CuePrimary, c.settings.SecondaryFor
	}

	c.stopPlayer(next)
	c.current = cue

	if err := c.play(cue); err != nil && !c.reported[cue] {
		c.reported[cue] = true
		c.log.Warnw("Cue is unavailable, rotating silently", "cue", cue, "error", err)
	}

	c.timer = c.clock.AfterFunc(period, func() {
		c.switchTo(next, generation)
	})
}

func (c *Channel) play(cue Cue) error {
	p := c.players[cue]
	if p == nil {
		return ErrCueUnavailable
	}

	if err := p.Play(); err != nil {
		return fmt.Errorf("play %s cue: %w: %w", cue, ErrCueUnavailable, err)
	}

	return nil
}

func (c *Channel) stopPlayer(cue Cue) {
	if p := c.players[cue]; p != nil {
		p.Stop()
	}
}
