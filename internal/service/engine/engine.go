package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/oshokin/wake-gate/internal/clock"
	"github.com/oshokin/wake-gate/internal/domain/alarm"
	domain "github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/coordinator"
	"github.com/oshokin/wake-gate/internal/service/sound"
	"github.com/oshokin/wake-gate/internal/service/volume"
)

// Snapshot is a consistent view of the engine.
type Snapshot struct {
	// State is the alarm state.
	State alarm.State
	// Round is the current round, nil unless ringing.
	Round *domain.Snapshot
}

// Dependencies are the OS-facing collaborators and their settings.
type Dependencies struct {
	// Primary plays the primary cue; nil when unavailable.
	Primary sound.Player
	// Secondary plays the secondary cue; nil when unavailable.
	Secondary sound.Player
	// Effector changes the system volume; nil when unavailable.
	Effector volume.Effector
	// Sound holds the cue rotation periods.
	Sound sound.Settings
	// Volume holds the ramp and hold parameters.
	Volume volume.Settings
}

// Option configures an Engine.
type Option func(*options)

// options collects Option values.
type options struct {
	// queueSize is the loop task buffer.
	queueSize int
	// coordinator are passed to coordinator.New.
	coordinator []coordinator.Option
}

// WithQueueSize sets the loop task buffer.
func WithQueueSize(size int) Option {
	return func(o *options) {
		o.queueSize = size
	}
}

// WithCoordinatorOptions passes options to the coordinator.
func WithCoordinatorOptions(opts ...coordinator.Option) Option {
	return func(o *options) {
		o.coordinator = append(o.coordinator, opts...)
	}
}

// Engine is the thread-safe entry point to the alarm.
//
// A command that returns a context error was not applied. Once the loop has
// started a command, the command completes and its snapshot is returned.
type Engine struct {
	// loop is the single execution context.
	loop *clock.Loop
	// bus fans out coordinator events.
	bus *events.Bus
	// coord owns the alarm state; only touched on the loop.
	coord *coordinator.Coordinator
	// workers apply sound and volume changes off the loop.
	workers []func(context.Context)
}

// New builds an engine. Nothing runs until Run is called.
func New(ctx context.Context, deps Dependencies, opts ...Option) *Engine {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	ctx = logger.WithName(ctx, "engine")

	loop := clock.NewLoop(o.queueSize)
	clk := loop.Clock()
	bus := events.NewBus()
	log := logger.FromContext(ctx)

	var workers []func(context.Context)

	// Players and the effector may block; the loop only hands the latest
	// request to their workers.
	primary, secondary, effector := deps.Primary, deps.Secondary, deps.Effector

	if primary != nil {
		p := newAsyncPlayer(log, sound.CuePrimary, primary)
		primary = p
		workers = append(workers, p.queue.run)
	}

	if secondary != nil {
		p := newAsyncPlayer(log, sound.CueSecondary, secondary)
		secondary = p
		workers = append(workers, p.queue.run)
	}

	if effector != nil {
		a := newAsyncEffector(log, effector)
		effector = a
		workers = append(workers, a.queue.run)
	}

	snd := sound.NewChannel(ctx, clk, primary, secondary, deps.Sound)
	vol := volume.NewEnforcer(ctx, clk, effector, deps.Volume)

	return &Engine{
		loop:    loop,
		bus:     bus,
		coord:   coordinator.New(ctx, clk, bus, snd, vol, o.coordinator...),
		workers: workers,
	}
}

// Run executes the engine until ctx is cancelled. On the way out the alarm
// is cancelled, the players are silenced and every subscription is closed.
func (e *Engine) Run(ctx context.Context) {
	ctx = logger.WithName(ctx, "engine")

	logger.Info(ctx, "Engine started")

	// Workers outlive ctx so that the final Stop calls still reach the players.
	workCtx, stopWorkers := context.WithCancel(context.WithoutCancel(ctx))

	var wg sync.WaitGroup

	for _, work := range e.workers {
		wg.Go(func() { work(workCtx) })
	}

	e.loop.Run(ctx)

	// The loop goroutine has returned, so this goroutine is the only one
	// touching the components now.
	e.coord.Cancel(nil)
	e.bus.Close()

	stopWorkers()
	wg.Wait()

	logger.Info(ctx, "Engine stopped")
}

// Schedule arms the alarm for the next hour:minute.
func (e *Engine) Schedule(ctx context.Context, actor *alarm.Actor, hour, minute int) (*Snapshot, error) {
	var opErr error

	snap, err := e.run(ctx, func() {
		opErr = e.coord.Schedule(actor, hour, minute)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	if opErr != nil {
		return nil, opErr
	}

	logger.InfoKV(ctx, "Schedule accepted", "hour", hour, "minute", minute, "actor", actor, "phase", snap.State.Phase)

	return snap, nil
}

// Cancel clears the alarm.
func (e *Engine) Cancel(ctx context.Context, actor *alarm.Actor) (*Snapshot, error) {
	snap, err := e.run(ctx, func() {
		e.coord.Cancel(actor)
	})
	if err != nil {
		return nil, fmt.Errorf("cancel: %w", err)
	}

	logger.InfoKV(ctx, "Cancel accepted", "actor", actor)

	return snap, nil
}

// SnoozeNow snoozes a ringing alarm.
func (e *Engine) SnoozeNow(ctx context.Context, actor *alarm.Actor) (*Snapshot, error) {
	snap, err := e.run(ctx, func() {
		e.coord.SnoozeNow(actor)
	})
	if err != nil {
		return nil, fmt.Errorf("snooze: %w", err)
	}

	logger.InfoKV(ctx, "Snooze requested", "actor", actor, "phase", snap.State.Phase)

	return snap, nil
}

// Tap taps a tile of the current round.
func (e *Engine) Tap(ctx context.Context, actor *alarm.Actor, tileID uuid.UUID) (*Snapshot, error) {
	var result domain.TapResult

	snap, err := e.run(ctx, func() {
		result = e.coord.Tap(tileID)
	})
	if err != nil {
		return nil, fmt.Errorf("tap: %w", err)
	}

	logger.DebugKV(ctx, "Tile tapped", "tile", tileID, "result", result, "actor", actor)

	return snap, nil
}

// GetState returns the current snapshot.
func (e *Engine) GetState(ctx context.Context) (*Snapshot, error) {
	snap, err := e.run(ctx, func() {})
	if err != nil {
		return nil, fmt.Errorf("get state: %w", err)
	}

	return snap, nil
}

// Subscribe registers an event subscriber.
func (e *Engine) Subscribe(buffer int) *events.Subscription {
	return e.bus.Subscribe(buffer)
}

// run executes f on the loop followed by a snapshot.
func (e *Engine) run(ctx context.Context, f func()) (*Snapshot, error) {
	var snap *Snapshot

	err := e.loop.Do(ctx, func() {
		f()

		snap = &Snapshot{
			State: e.coord.State(),
			Round: e.coord.Round(),
		}
	})
	if err != nil {
		return nil, err
	}

	return snap, nil
}
