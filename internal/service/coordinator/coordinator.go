package coordinator

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/clock"
	"github.com/oshokin/wake-gate/internal/domain/alarm"
	domain "github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/puzzle"
)

// DefaultSnoozeFor is the delay before a dismissed alarm rings again.
const DefaultSnoozeFor = 15 * time.Minute

// Sound is the sound rotation driven while ringing.
type Sound interface {
	// Start begins the rotation.
	Start()
	// Stop silences it.
	Stop()
	// Active reports whether it runs.
	Active() bool
}

// Volume is the volume enforcement driven while ringing.
type Volume interface {
	// Ensure starts enforcement unless it already runs.
	Ensure()
	// Stop cancels enforcement.
	Stop()
	// Active reports whether it runs.
	Active() bool
}

// Publisher receives events.
type Publisher interface {
	// Publish must not block.
	Publish(e events.Event)
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithSnoozeFor overrides the snooze duration.
func WithSnoozeFor(d time.Duration) Option {
	return func(c *Coordinator) {
		c.snoozeFor = d
	}
}

// WithGateOptions passes options to the puzzle gate.
func WithGateOptions(opts ...puzzle.Option) Option {
	return func(c *Coordinator) {
		c.gateOptions = append(c.gateOptions, opts...)
	}
}

// Coordinator is the alarm state machine.
type Coordinator struct {
	// clock arms the wake and snooze timers.
	clock clock.Clock
	// publisher receives transition events.
	publisher Publisher
	// sound is the cue rotation.
	sound Sound
	// volume is the volume enforcement.
	volume Volume
	// gate runs the puzzle rounds.
	gate *puzzle.Gate
	// gateOptions are applied when the gate is built.
	gateOptions []puzzle.Option
	// log is the component logger.
	log *zap.SugaredLogger
	// snoozeFor is the snooze duration.
	snoozeFor time.Duration
	// state is the single alarm state.
	state alarm.State
	// timer is the pending wake or snooze timer.
	timer clock.Timer
	// epoch invalidates wake and snooze callbacks of left states.
	epoch uint64
}

// New creates an idle coordinator and its puzzle gate.
func New(
	ctx context.Context,
	clk clock.Clock,
	publisher Publisher,
	sound Sound,
	volume Volume,
	opts ...Option,
) *Coordinator {
	ctx = logger.WithName(ctx, "coordinator")

	c := &Coordinator{
		clock:     clk,
		publisher: publisher,
		sound:     sound,
		volume:    volume,
		log:       logger.FromContext(ctx),
		snoozeFor: DefaultSnoozeFor,
		state: alarm.State{
			Phase:     alarm.PhaseIdle,
			Timestamp: clk.Now(),
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	gateOptions := append([]puzzle.Option{puzzle.WithOnChange(c.roundChanged)}, c.gateOptions...)
	c.gate = puzzle.NewGate(ctx, clk, c, gateOptions...)

	return c
}

// Schedule replaces whatever the alarm is doing with a wake at the next
// hour:minute. A wake time inside the current minute rings right away.
func (c *Coordinator) Schedule(actor *alarm.Actor, hour, minute int) error {
	if err := alarm.ValidateTime(hour, minute); err != nil {
		return err
	}

	if c.state.Phase != alarm.PhaseIdle {
		wasRinging := c.state.Phase == alarm.PhaseRinging

		c.teardown()

		if wasRinging {
			c.enterIdle(actor, alarm.IdleReasonRescheduled)
		}
	}

	now := c.clock.Now()

	wakeAt, due := alarm.NextOccurrence(now, hour, minute)
	if due {
		c.log.Infow("Wake time is now, ringing immediately", "wake_at", wakeAt, "actor", actor)
		c.ring(actor)

		return nil
	}

	epoch := c.epoch
	c.timer = c.clock.AfterFunc(wakeAt.Sub(now), func() {
		c.timerFired(epoch, "wake")
	})

	c.state = alarm.State{
		Phase:     alarm.PhaseScheduled,
		WakeAt:    wakeAt,
		Timestamp: now,
		LastActor: actor.Clone(),
	}

	c.log.Infow("Alarm scheduled", "wake_at", wakeAt, "actor", actor)
	c.publish(events.KindStateChanged, alarm.IdleReasonNone, nil)

	return nil
}

// Cancel clears the alarm from any phase. Cancelling an idle alarm is a no-op.
func (c *Coordinator) Cancel(actor *alarm.Actor) {
	if c.state.Phase == alarm.PhaseIdle {
		return
	}

	c.teardown()
	c.enterIdle(actor, alarm.IdleReasonCancelled)

	c.log.Infow("Alarm cancelled", "actor", actor)
}

// SnoozeNow dismisses a ringing alarm without solving the puzzle. It is a
// no-op in any other phase.
func (c *Coordinator) SnoozeNow(actor *alarm.Actor) {
	if c.state.Phase != alarm.PhaseRinging {
		return
	}

	c.dismiss(actor, alarm.IdleReasonSnoozed)
}

// Tap forwards a tile tap to the puzzle gate while ringing.
func (c *Coordinator) Tap(id uuid.UUID) domain.TapResult {
	if c.state.Phase != alarm.PhaseRinging {
		return domain.TapIgnored
	}

	return c.gate.Tap(id)
}

// State returns a copy of the alarm state.
func (c *Coordinator) State() alarm.State {
	return *c.state.Clone()
}

// Round returns the current round snapshot, nil unless ringing.
func (c *Coordinator) Round() *domain.Snapshot {
	if c.state.Phase != alarm.PhaseRinging {
		return nil
	}

	return c.gate.Current()
}

// PuzzleWon dismisses the alarm and snoozes it.
func (c *Coordinator) PuzzleWon() {
	if c.state.Phase != alarm.PhaseRinging {
		return
	}

	c.log.Info("Puzzle solved")
	c.dismiss(nil, alarm.IdleReasonWon)
}

// PuzzleLost keeps ringing with a fresh round.
func (c *Coordinator) PuzzleLost() {
	if c.state.Phase != alarm.PhaseRinging {
		return
	}

	c.log.Info("Puzzle failed, starting a new round")
	c.gate.NewRound()
	c.volume.Ensure()
}

// dismiss tears ringing down, reports Idle and arms the snooze.
func (c *Coordinator) dismiss(actor *alarm.Actor, reason alarm.IdleReason) {
	c.teardown()
	c.enterIdle(actor, reason)

	now := c.clock.Now()
	epoch := c.epoch

	c.timer = c.clock.AfterFunc(c.snoozeFor, func() {
		c.timerFired(epoch, "snooze")
	})

	c.state = alarm.State{
		Phase:     alarm.PhaseSnoozed,
		ResumeAt:  now.Add(c.snoozeFor),
		Timestamp: now,
		LastActor: actor.Clone(),
	}

	c.log.Infow("Alarm snoozed", "resume_at", c.state.ResumeAt, "reason", reason, "actor", actor)
	c.publish(events.KindStateChanged, alarm.IdleReasonNone, nil)
}

// ring enters Ringing and starts every ringing component.
func (c *Coordinator) ring(actor *alarm.Actor) {
	c.state = alarm.State{
		Phase:     alarm.PhaseRinging,
		Timestamp: c.clock.Now(),
		LastActor: actor.Clone(),
	}

	c.log.Info("Alarm is ringing")
	c.publish(events.KindAlarmActivated, alarm.IdleReasonNone, nil)

	c.sound.Start()
	c.volume.Ensure()
	c.gate.NewRound()
}

// timerFired handles the wake and snooze timers.
func (c *Coordinator) timerFired(epoch uint64, name string) {
	if epoch != c.epoch {
		c.log.Debugw("Dropped stale timer", "timer", name, "epoch", epoch, "current", c.epoch)

		return
	}

	c.timer = nil
	c.ring(nil)
}

// teardown cancels the pending timer and stops every ringing component.
func (c *Coordinator) teardown() {
	c.timer = clock.Stop(c.timer)
	c.epoch++

	c.sound.Stop()
	c.volume.Stop()
	c.gate.Discard()
}

func (c *Coordinator) enterIdle(actor *alarm.Actor, reason alarm.IdleReason) {
	c.state = alarm.State{
		Phase:     alarm.PhaseIdle,
		Timestamp: c.clock.Now(),
		LastActor: actor.Clone(),
	}

	c.publish(events.KindAlarmIdle, reason, nil)
}

// roundChanged is the gate's change hook.
func (c *Coordinator) roundChanged(s *domain.Snapshot) {
	c.publish(events.KindRoundChanged, alarm.IdleReasonNone, s)
}

func (c *Coordinator) publish(kind events.Kind, reason alarm.IdleReason, round *domain.Snapshot) {
	if c.publisher == nil {
		return
	}

	c.publisher.Publish(events.Event{
		Kind:   kind,
		At:     c.clock.Now(),
		Reason: reason,
		State:  *c.state.Clone(),
		Round:  round,
	})
}
