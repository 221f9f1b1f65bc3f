package coordinator

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/wake-gate/internal/clock"
	"github.com/oshokin/wake-gate/internal/domain/alarm"
	domain "github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
	"github.com/oshokin/wake-gate/internal/service/puzzle"
	"github.com/oshokin/wake-gate/internal/service/sound"
	"github.com/oshokin/wake-gate/internal/service/volume"
)

// silentPlayer satisfies sound.Player without producing audio.
type silentPlayer struct {
	// playing reports whether Play was called since the last Stop.
	playing bool
}

// Play marks the player as audible.
func (p *silentPlayer) Play() error {
	p.playing = true

	return nil
}

// Stop silences the player.
func (p *silentPlayer) Stop() {
	p.playing = false
}

// nopEffector accepts every volume.
type nopEffector struct{}

// SetOutputVolume does nothing.
func (nopEffector) SetOutputVolume(int) error {
	return nil
}

// fixture wires a coordinator to real components on a fake clock.
type fixture struct {
	// clock drives every timer.
	clock *clock.Fake
	// bus receives the coordinator's events.
	bus *events.Bus
	// sub buffers everything published on bus.
	sub *events.Subscription
	// sound is the real cue rotation.
	sound *sound.Channel
	// volume is the real volume enforcer.
	volume *volume.Enforcer
	// primary backs the primary cue.
	primary *silentPlayer
	// secondary backs the secondary cue.
	secondary *silentPlayer
	// coord is the coordinator under test.
	coord *Coordinator
}

// testActor is the user issuing commands in tests.
var testActor = &alarm.Actor{Hostname: "bedroom", Username: "sleeper"} //nolint:gochecknoglobals // Test data.

// newFixture builds a coordinator whose clock starts at now.
func newFixture(t *testing.T, now time.Time, opts ...Option) *fixture {
	t.Helper()

	ctx := context.Background()
	f := &fixture{
		clock:     clock.NewFake(now),
		bus:       events.NewBus(),
		primary:   new(silentPlayer),
		secondary: new(silentPlayer),
	}

	f.sub = f.bus.Subscribe(4096)
	f.sound = sound.NewChannel(ctx, f.clock, f.primary, f.secondary, sound.DefaultSettings())
	f.volume = volume.NewEnforcer(ctx, f.clock, nopEffector{}, volume.DefaultSettings())

	opts = append([]Option{WithGateOptions(puzzle.WithRand(rand.New(rand.NewPCG(3, 5))))}, opts...)
	f.coord = New(ctx, f.clock, f.bus, f.sound, f.volume, opts...)

	return f
}

// at returns a UTC instant on 2026-10-19.
func at(hour, minute, sec int) time.Time {
	return time.Date(2026, time.October, 19, hour, minute, sec, 0, time.UTC)
}

// checkInvariant asserts that ringing components run iff the alarm rings.
func (f *fixture) checkInvariant(t *testing.T) {
	t.Helper()

	ringing := f.coord.State().Phase == alarm.PhaseRinging
	require.Equal(t, ringing, f.sound.Active(), "sound channel")
	require.Equal(t, ringing, f.volume.Active(), "volume enforcer")
	require.Equal(t, ringing, f.coord.Round() != nil, "puzzle round")
}

// events drains every published event.
func (f *fixture) events() []events.Event {
	var got []events.Event

	for {
		select {
		case e := <-f.sub.C():
			got = append(got, e)
		default:
			return got
		}
	}
}

// kinds filters out round changes and returns the remaining kinds with reasons.
func kinds(list []events.Event) []string {
	var out []string

	for _, e := range list {
		if e.Kind == events.KindRoundChanged {
			continue
		}

		name := e.Kind.String() + ":" + e.State.Phase.String()
		if e.Reason != alarm.IdleReasonNone {
			name += ":" + e.Reason.String()
		}

		out = append(out, name)
	}

	return out
}

// previewCorrect returns the correct tile ids visible during the preview.
func (f *fixture) previewCorrect(t *testing.T) []uuid.UUID {
	t.Helper()

	snap := f.coord.Round()
	require.NotNil(t, snap)
	require.Equal(t, domain.PhasePreview, snap.Phase)

	var ids []uuid.UUID

	for _, tile := range snap.Tiles {
		if tile.Revealed && tile.Correct {
			ids = append(ids, tile.ID)
		}
	}

	require.Len(t, ids, domain.CorrectCount)

	return ids
}

// someWrong returns a tile id that is not in correct.
func (f *fixture) someWrong(t *testing.T, correct []uuid.UUID) uuid.UUID {
	t.Helper()

	for _, tile := range f.coord.Round().Tiles {
		if !slices.Contains(correct, tile.ID) {
			return tile.ID
		}
	}

	t.Fatal("no incorrect tile")

	return uuid.Nil
}

// TestSchedule_AllTimes checks the next-occurrence rule for every hour and minute.
func TestSchedule_AllTimes(t *testing.T) {
	t.Parallel()

	now := at(10, 30, 20)
	f := newFixture(t, now)

	for hour := range 24 {
		for minute := range 60 {
			require.NoError(t, f.coord.Schedule(testActor, hour, minute))

			state := f.coord.State()

			if hour == 10 && minute == 30 {
				require.Equal(t, alarm.PhaseRinging, state.Phase)
				f.checkInvariant(t)

				continue
			}

			require.Equal(t, alarm.PhaseScheduled, state.Phase, "%02d:%02d", hour, minute)
			require.True(t, state.WakeAt.After(now))
			require.LessOrEqual(t, state.WakeAt.Sub(now), 24*time.Hour)
			require.Equal(t, hour, state.WakeAt.Hour())
			require.Equal(t, minute, state.WakeAt.Minute())
			require.Zero(t, state.WakeAt.Second())
			require.Equal(t, testActor, state.LastActor)
			require.Equal(t, 1, f.clock.Pending())
			f.checkInvariant(t)
		}
	}
}

// TestSchedule_InvalidInput ensures out-of-range input is rejected and leaves the state alone.
func TestSchedule_InvalidInput(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(6, 0, 0))
	require.NoError(t, f.coord.Schedule(testActor, 7, 0))

	before := f.coord.State()

	for _, tc := range [][2]int{{24, 0}, {-1, 0}, {0, 60}, {0, -5}} {
		require.ErrorIs(t, f.coord.Schedule(testActor, tc[0], tc[1]), alarm.ErrInvalidScheduleInput)
	}

	require.Equal(t, before, f.coord.State())
	require.Equal(t, 1, f.clock.Pending())
}

// TestSchedule_AcrossMidnightRings schedules 00:00 at 23:59:50 and lets it ring.
func TestSchedule_AcrossMidnightRings(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(23, 59, 50))

	require.NoError(t, f.coord.Schedule(testActor, 0, 0))

	state := f.coord.State()
	require.Equal(t, alarm.PhaseScheduled, state.Phase)
	require.Equal(t, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), state.WakeAt)
	f.checkInvariant(t)

	f.clock.Advance(10*time.Second - time.Nanosecond)
	require.Equal(t, alarm.PhaseScheduled, f.coord.State().Phase)

	f.clock.Advance(time.Nanosecond)

	state = f.coord.State()
	require.Equal(t, alarm.PhaseRinging, state.Phase)
	require.True(t, state.WakeAt.IsZero())
	require.Nil(t, state.LastActor)
	require.True(t, f.primary.playing)
	f.checkInvariant(t)

	f.previewCorrect(t)
	require.Equal(t, []string{"state-changed:scheduled", "alarm-activated:ringing"}, kinds(f.events()))
}

// TestPuzzleLost_WrongTapStartsNewRound verifies a loss keeps the alarm ringing.
func TestPuzzleLost_WrongTapStartsNewRound(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(7, 0, 0))
	require.NoError(t, f.coord.Schedule(testActor, 7, 0))

	correct := f.previewCorrect(t)
	first := f.coord.Round().Generation

	f.clock.Advance(puzzle.DefaultPreviewWindow)
	require.Equal(t, domain.PhaseInteractive, f.coord.Round().Phase)

	require.Equal(t, domain.TapCorrect, f.coord.Tap(correct[0]))
	require.Equal(t, domain.TapWrong, f.coord.Tap(f.someWrong(t, correct)))

	f.clock.Advance(puzzle.DefaultLoseDelay)

	require.Equal(t, alarm.PhaseRinging, f.coord.State().Phase)
	f.checkInvariant(t)

	snap := f.coord.Round()
	require.Greater(t, snap.Generation, first)
	require.Equal(t, domain.PhasePreview, snap.Phase)

	var lost bool

	for _, e := range f.events() {
		if e.Kind == events.KindRoundChanged && e.Round != nil && e.Round.Generation == first {
			lost = lost || e.Round.Outcome == domain.OutcomeLost
		}
	}

	require.True(t, lost)
}

// TestPuzzleWon_GoesIdleThenSnoozes verifies a solved puzzle goes Idle, then Snoozed, then rings again.
func TestPuzzleWon_GoesIdleThenSnoozes(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(7, 0, 0))
	require.NoError(t, f.coord.Schedule(testActor, 7, 0))

	correct := f.previewCorrect(t)
	f.clock.Advance(puzzle.DefaultPreviewWindow)

	// Any order works.
	for i := len(correct) - 1; i > 0; i-- {
		require.Equal(t, domain.TapCorrect, f.coord.Tap(correct[i]))
	}

	require.Equal(t, domain.TapComplete, f.coord.Tap(correct[0]))
	require.Equal(t, alarm.PhaseRinging, f.coord.State().Phase)

	f.clock.Advance(puzzle.DefaultWinDelay)

	won := f.clock.Now()
	state := f.coord.State()
	require.Equal(t, alarm.PhaseSnoozed, state.Phase)
	require.Equal(t, won.Add(DefaultSnoozeFor), state.ResumeAt)
	require.Nil(t, state.LastActor)
	require.False(t, f.primary.playing)
	require.False(t, f.secondary.playing)
	require.Equal(t, 1, f.clock.Pending())
	f.checkInvariant(t)

	require.Equal(t, []string{
		"alarm-activated:ringing",
		"alarm-idle:idle:won",
		"state-changed:snoozed",
	}, kinds(f.events()))

	f.clock.Advance(DefaultSnoozeFor)
	require.Equal(t, alarm.PhaseRinging, f.coord.State().Phase)
	f.checkInvariant(t)
}

// TestCancel_WhileRingingLeavesNothingRunning verifies that cancel leaves nothing running.
func TestCancel_WhileRingingLeavesNothingRunning(t *testing.T) {
	t.Parallel()

	for _, ringFor := range []time.Duration{0, 4 * time.Second, 30 * time.Second, 10 * time.Minute} {
		f := newFixture(t, at(7, 0, 0))
		require.NoError(t, f.coord.Schedule(testActor, 7, 0))

		f.clock.Advance(ringFor)

		if ringFor > puzzle.DefaultPreviewWindow {
			// Leave a verdict pending too.
			round := f.coord.Round()
			require.Equal(t, domain.PhaseInteractive, round.Phase)
			f.coord.Tap(round.Tiles[0].ID)
		}

		f.coord.Cancel(testActor)

		state := f.coord.State()
		require.Equal(t, alarm.PhaseIdle, state.Phase)
		require.Equal(t, testActor, state.LastActor)
		require.Zero(t, f.clock.Pending())
		require.False(t, f.primary.playing)
		require.False(t, f.secondary.playing)
		f.checkInvariant(t)

		f.events()

		// Cancel is idempotent.
		f.coord.Cancel(testActor)
		require.Empty(t, f.events())
		require.Equal(t, state, f.coord.State())
	}
}

// TestCancel_FromScheduledAndSnoozed ensures Cancel clears the wake and snooze timers.
func TestCancel_FromScheduledAndSnoozed(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(6, 0, 0))

	require.NoError(t, f.coord.Schedule(testActor, 7, 0))
	f.coord.Cancel(testActor)
	require.Equal(t, alarm.PhaseIdle, f.coord.State().Phase)
	require.Zero(t, f.clock.Pending())

	require.NoError(t, f.coord.Schedule(testActor, 6, 0))
	f.coord.SnoozeNow(testActor)
	require.Equal(t, alarm.PhaseSnoozed, f.coord.State().Phase)

	f.coord.Cancel(testActor)
	require.Equal(t, alarm.PhaseIdle, f.coord.State().Phase)
	require.Zero(t, f.clock.Pending())

	f.clock.Advance(24 * time.Hour)
	require.Equal(t, alarm.PhaseIdle, f.coord.State().Phase)
}

// TestSnoozeNow checks manual snoozing and that it is ignored outside Ringing.
func TestSnoozeNow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(6, 0, 0), WithSnoozeFor(5*time.Minute))

	f.coord.SnoozeNow(testActor)
	require.Equal(t, alarm.PhaseIdle, f.coord.State().Phase)

	require.NoError(t, f.coord.Schedule(testActor, 6, 30))
	f.coord.SnoozeNow(testActor)
	require.Equal(t, alarm.PhaseScheduled, f.coord.State().Phase)

	require.NoError(t, f.coord.Schedule(testActor, 6, 0))
	f.events()

	f.coord.SnoozeNow(testActor)

	state := f.coord.State()
	require.Equal(t, alarm.PhaseSnoozed, state.Phase)
	require.Equal(t, at(6, 5, 0), state.ResumeAt)
	require.Equal(t, testActor, state.LastActor)
	require.Equal(t, 1, f.clock.Pending())
	require.Equal(t, []string{"alarm-idle:idle:snoozed", "state-changed:snoozed"}, kinds(f.events()))

	f.clock.Advance(5 * time.Minute)
	require.Equal(t, alarm.PhaseRinging, f.coord.State().Phase)
}

// TestSchedule_ReplacesRinging verifies rescheduling a ringing alarm.
func TestSchedule_ReplacesRinging(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(6, 0, 0))
	require.NoError(t, f.coord.Schedule(testActor, 6, 0))
	f.events()

	require.NoError(t, f.coord.Schedule(testActor, 6, 45))
	require.Equal(t, alarm.PhaseScheduled, f.coord.State().Phase)
	require.Equal(t, 1, f.clock.Pending())
	f.checkInvariant(t)

	require.Equal(t, []string{"alarm-idle:idle:rescheduled", "state-changed:scheduled"}, kinds(f.events()))
}

// TestTap_IgnoredUnlessRinging ensures taps outside Ringing have no effect.
func TestTap_IgnoredUnlessRinging(t *testing.T) {
	t.Parallel()

	f := newFixture(t, at(6, 0, 0))
	require.Equal(t, domain.TapIgnored, f.coord.Tap(uuid.New()))
	require.Nil(t, f.coord.Round())

	require.NoError(t, f.coord.Schedule(testActor, 7, 0))
	require.Equal(t, domain.TapIgnored, f.coord.Tap(uuid.New()))
}

// leakyClock never cancels timers, so stale callbacks reach their owners.
type leakyClock struct {
	*clock.Fake
}

// AfterFunc arms a timer whose Stop is a no-op.
func (c leakyClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.Fake.AfterFunc(d, f)

	return leakyTimer{}
}

// leakyTimer pretends to stop.
type leakyTimer struct{}

// Stop does nothing.
func (leakyTimer) Stop() bool {
	return true
}

// TestStaleCallbacksAreDropped lets every cancelled timer fire and checks that nothing reacts.
func TestStaleCallbacksAreDropped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clk := leakyClock{clock.NewFake(at(6, 0, 0))}
	bus := events.NewBus()
	sub := bus.Subscribe(4096)

	snd := sound.NewChannel(ctx, clk, new(silentPlayer), new(silentPlayer), sound.DefaultSettings())
	vol := volume.NewEnforcer(ctx, clk, nopEffector{}, volume.DefaultSettings())
	coord := New(ctx, clk, bus, snd, vol)

	require.NoError(t, coord.Schedule(testActor, 7, 0))
	coord.Cancel(testActor)
	require.NoError(t, coord.Schedule(testActor, 8, 0))

	// The first wake timer fires at 07:00 with an outdated epoch.
	clk.Advance(time.Hour)
	require.Equal(t, alarm.PhaseScheduled, coord.State().Phase)

	clk.Advance(time.Hour)
	require.Equal(t, alarm.PhaseRinging, coord.State().Phase)

	// Snooze, then cancel: the round, sound, volume and snooze timers all go stale.
	coord.SnoozeNow(testActor)
	coord.Cancel(testActor)
	clk.Advance(time.Hour)

	require.Equal(t, alarm.PhaseIdle, coord.State().Phase)
	require.False(t, snd.Active())
	require.False(t, vol.Active())

	activations := 0

	for {
		select {
		case e := <-sub.C():
			if e.Kind == events.KindAlarmActivated {
				activations++
			}

			continue
		default:
		}

		break
	}

	require.Equal(t, 1, activations)
}
