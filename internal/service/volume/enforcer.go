package volume

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/clock"
	"github.com/oshokin/wake-gate/internal/logger"
)

// Stock enforcement parameters.
const (
	DefaultInitialDelay = 5 * time.Second
	DefaultRampDuration = 10 * time.Second
	DefaultRampSteps    = 14
	DefaultFloor        = 30
	DefaultTarget       = 100
	DefaultHoldInterval = 2 * time.Second
)

var (
	// ErrEffectorUnavailable is reported when the system volume cannot be changed.
	ErrEffectorUnavailable = errors.New("volume effector unavailable")
	// ErrInvalidSettings is returned by Settings.Validate.
	ErrInvalidSettings = errors.New("invalid volume settings")
)

// Effector changes the system output volume. The enforcer calls it on the
// engine loop, so it must return promptly; the engine queues blocking
// effectors to a worker.
type Effector interface {
	// SetOutputVolume sets the output volume in percent, 0..100.
	SetOutputVolume(percent int) error
}

// Phase is the enforcement stage.
type Phase uint8

const (
	// PhaseInactive means nothing is enforced.
	PhaseInactive Phase = iota
	// PhaseWaiting means the initial delay is running.
	PhaseWaiting
	// PhaseRamping means the volume is being raised step by step.
	PhaseRamping
	// PhaseHolding means Target is re-asserted periodically.
	PhaseHolding
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhaseRamping:
		return "ramping"
	case PhaseHolding:
		return "holding"
	default:
		return "inactive"
	}
}

// Settings controls the ramp and hold behaviour.
type Settings struct {
	// InitialDelay is used by Ensure and by Start callers that follow the stock behaviour.
	InitialDelay time.Duration
	// RampDuration is the time from Floor to Target.
	RampDuration time.Duration
	// RampSteps is the number of increments after the Floor step.
	RampSteps int
	// Floor is the first volume applied.
	Floor int
	// Target is the volume held after the ramp.
	Target int
	// HoldInterval is the period of Target re-assertion.
	HoldInterval time.Duration
}

// DefaultSettings returns the stock parameters.
func DefaultSettings() Settings {
	return Settings{
		InitialDelay: DefaultInitialDelay,
		RampDuration: DefaultRampDuration,
		RampSteps:    DefaultRampSteps,
		Floor:        DefaultFloor,
		Target:       DefaultTarget,
		HoldInterval: DefaultHoldInterval,
	}
}

// Validate checks that the settings describe a usable ramp.
func (s Settings) Validate() error {
	switch {
	case s.InitialDelay < 0:
		return errors.Join(ErrInvalidSettings, errors.New("initial delay must not be negative"))
	case s.RampDuration <= 0 || s.RampSteps <= 0:
		return errors.Join(ErrInvalidSettings, errors.New("ramp duration and steps must be positive"))
	case s.Floor < 0 || s.Target > 100 || s.Floor > s.Target:
		return errors.Join(ErrInvalidSettings, errors.New("expected 0 <= floor <= target <= 100"))
	case s.HoldInterval <= 0:
		return errors.Join(ErrInvalidSettings, errors.New("hold interval must be positive"))
	default:
		return nil
	}
}

// StepVolume returns the volume of ramp step i, where step 0 is Floor and
// step RampSteps is Target.
func (s Settings) StepVolume(i int) int {
	return s.Floor + (s.Target-s.Floor)*i/s.RampSteps
}

// Enforcer drives the ramp and hold timers.
// It must only be used from the engine's execution context.
type Enforcer struct {
	// clock arms the single pending timer.
	clock clock.Clock
	// effector applies volume changes.
	effector Effector
	// settings holds the ramp and hold parameters.
	settings Settings
	// log is the component logger.
	log *zap.SugaredLogger
	// phase is the current stage.
	phase Phase
	// step is the next ramp step to apply.
	step int
	// timer is the pending delay, ramp or hold timer.
	timer clock.Timer
	// generation invalidates callbacks of earlier activations.
	generation uint64
	// reported is set once an effector failure was logged in this activation.
	reported bool
}

// NewEnforcer creates an inactive enforcer. Invalid settings are replaced by the defaults.
func NewEnforcer(ctx context.Context, clk clock.Clock, effector Effector, settings Settings) *Enforcer {
	log := logger.FromContext(logger.WithName(ctx, "volume"))

	if err := settings.Validate(); err != nil {
		log.Warnw("Falling back to default volume settings", "error", err)

		settings = DefaultSettings()
	}

	return &Enforcer{
		clock:    clk,
		effector: effector,
		settings: settings,
		log:      log,
	}
}

// Start (re)starts enforcement: after delay the ramp begins.
func (e *Enforcer) Start(delay time.Duration) {
	e.halt()

	e.reported = false
	e.phase = PhaseWaiting
	e.arm(delay, e.beginRamp)
}

// Ensure starts enforcement with the configured initial delay unless it is already active.
func (e *Enforcer) Ensure() {
	if e.Active() {
		return
	}

	e.Start(e.settings.InitialDelay)
}

// Stop cancels the pending timer. It is idempotent.
func (e *Enforcer) Stop() {
	e.halt()
}

// Active reports whether enforcement is running.
func (e *Enforcer) Active() bool {
	return e.phase != PhaseInactive
}

// Phase returns the current stage.
func (e *Enforcer) Phase() Phase {
	return e.phase
}

// Settings returns the effective parameters.
func (e *Enforcer) Settings() Settings {
	return e.settings
}

func (e *Enforcer) halt() {
	e.timer = clock.Stop(e.timer)
	e.generation++
	e.phase = PhaseInactive
	e.step = 0
}

// arm replaces the pending timer with one that runs f for the current generation.
func (e *Enforcer) arm(d time.Duration, f func()) {
	e.timer = clock.Stop(e.timer)

	generation := e.generation
	e.timer = e.clock.AfterFunc(d, func() {
		if generation != e.generation {
			e.log.Debugw("Dropped stale volume callback", "generation", generation)

			return
		}

		e.timer = nil
		f()
	})
}

func (e *Enforcer) beginRamp() {
	e.phase = PhaseRamping
	e.step = 0
	e.rampStep()
}

func (e *Enforcer) rampStep() {
	e.apply(e.settings.StepVolume(e.step))

	if e.step >= e.settings.RampSteps {
		e.phase = PhaseHolding
		e.arm(e.settings.HoldInterval, e.hold)

		return
	}

	e.step++
	e.arm(e.settings.RampDuration/time.Duration(e.settings.RampSteps), e.rampStep)
}

func (e *Enforcer) hold() {
	e.apply(e.settings.Target)
	e.arm(e.settings.HoldInterval, e.hold)
}

func (e *Enforcer) apply(percent int) {
	if e.effector == nil {
		e.report(percent, ErrEffectorUnavailable)

		return
	}

	if err := e.effector.SetOutputVolume(percent); err != nil {
		e.report(percent, err)
	}
}

func (e *Enforcer) report(percent int, err error) {
	if e.reported {
		return
	}

	e.reported = true
	e.log.Warnw("Failed to set output volume, enforcement continues", "volume", percent, "error", err)
}
