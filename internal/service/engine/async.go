package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/service/sound"
	"github.com/oshokin/wake-gate/internal/service/volume"
)

// latest hands values to apply on a dedicated goroutine. Submitting never
// blocks: a value still waiting is replaced by the newer one.
type latest[T any] struct {
	// pending holds at most one value not yet applied.
	pending chan T
	// apply consumes values on the worker goroutine.
	apply func(T)
}

func newLatest[T any](apply func(T)) *latest[T] {
	return &latest[T]{
		pending: make(chan T, 1),
		apply:   apply,
	}
}

// submit replaces any waiting value with v. Callers must not submit concurrently.
func (l *latest[T]) submit(v T) {
	for {
		select {
		case l.pending <- v:
			return
		default:
		}

		select {
		case <-l.pending:
		default:
		}
	}
}

// run applies values until ctx is done, then applies the one still waiting.
func (l *latest[T]) run(ctx context.Context) {
	for {
		select {
		case v := <-l.pending:
			l.apply(v)
		case <-ctx.Done():
			select {
			case v := <-l.pending:
				l.apply(v)
			default:
			}

			return
		}
	}
}

// asyncEffector moves volume changes off the loop; only the latest percent is applied.
type asyncEffector struct {
	// effector is the blocking OS effector.
	effector volume.Effector
	// queue carries percents to the worker.
	queue *latest[int]
	// log is the engine logger.
	log *zap.SugaredLogger
	// failing is set after a logged failure until the next success; worker only.
	failing bool
}

func newAsyncEffector(log *zap.SugaredLogger, effector volume.Effector) *asyncEffector {
	a := &asyncEffector{
		effector: effector,
		log:      log,
	}
	a.queue = newLatest(a.set)

	return a
}

// SetOutputVolume queues percent and returns at once.
// Failures are logged by the worker, once per run of failures.
func (a *asyncEffector) SetOutputVolume(percent int) error {
	a.queue.submit(percent)

	return nil
}

func (a *asyncEffector) set(percent int) {
	err := a.effector.SetOutputVolume(percent)

	switch {
	case err == nil:
		a.failing = false
	case !a.failing:
		a.failing = true
		a.log.Warnw("Failed to set output volume, enforcement continues", "volume", percent, "error", err)
	}
}

// asyncPlayer moves cue playback off the loop; a Stop followed by Play collapses into Play.
type asyncPlayer struct {
	// cue names the player in logs.
	cue sound.Cue
	// player is the blocking OS player.
	player sound.Player
	// queue carries the wanted state, true for playing.
	queue *latest[bool]
	// log is the engine logger.
	log *zap.SugaredLogger
	// failing is set after a logged failure until the next success; worker only.
	failing bool
}

func newAsyncPlayer(log *zap.SugaredLogger, cue sound.Cue, player sound.Player) *asyncPlayer {
	p := &asyncPlayer{
		cue:    cue,
		player: player,
		log:    log,
	}
	p.queue = newLatest(p.apply)

	return p
}

// Play queues a restart of the cue.
func (p *asyncPlayer) Play() error {
	p.queue.submit(true)

	return nil
}

// Stop queues silencing the cue.
func (p *asyncPlayer) Stop() {
	p.queue.submit(false)
}

func (p *asyncPlayer) apply(play bool) {
	if !play {
		p.player.Stop()

		return
	}

	err := p.player.Play()

	switch {
	case err == nil:
		p.failing = false
	case !p.failing:
		p.failing = true
		p.log.Warnw("Cue failed to play, rotating silently", "cue", p.cue, "error", err)
	}
}
