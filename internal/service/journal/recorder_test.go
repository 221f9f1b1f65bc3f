package journal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
)

// fakeRepository collects appended sessions in memory.
type fakeRepository struct {
	// mu protects sessions.
	mu sync.Mutex
	// sessions holds appended sessions in order.
	sessions []*alarm.Session
	// err is returned from Append when set.
	err error
}

func (f *fakeRepository) Append(_ context.Context, session *alarm.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}

	f.sessions = append(f.sessions, session)

	return nil
}

func (f *fakeRepository) List(context.Context, int) ([]*alarm.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.sessions, nil
}

func lost(generation uint64) *puzzle.Snapshot {
	return &puzzle.Snapshot{Generation: generation, Phase: puzzle.PhaseResolved, Outcome: puzzle.OutcomeLost}
}

var t0 = time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)

// TestRecorder_CountsLostRoundsOnce verifies repeated resolved snapshots count once.
func TestRecorder_CountsLostRoundsOnce(t *testing.T) {
	t.Parallel()

	repo := new(fakeRepository)
	rec := NewRecorder(context.Background(), repo)
	ctx := context.Background()

	rec.Handle(ctx, events.Event{Kind: events.KindAlarmActivated, At: t0})
	rec.Handle(ctx, events.Event{Kind: events.KindRoundChanged, Round: &puzzle.Snapshot{Generation: 1, Phase: puzzle.PhaseInteractive}})
	rec.Handle(ctx, events.Event{Kind: events.KindRoundChanged, Round: lost(1)})
	rec.Handle(ctx, events.Event{Kind: events.KindRoundChanged, Round: lost(1)})
	rec.Handle(ctx, events.Event{Kind: events.KindRoundChanged, Round: lost(2)})
	rec.Handle(ctx, events.Event{Kind: events.KindRoundChanged, Round: nil})
	rec.Handle(ctx, events.Event{
		Kind:   events.KindAlarmIdle,
		At:     t0.Add(2 * time.Minute),
		Reason: alarm.IdleReasonWon,
		State:  alarm.State{LastActor: &alarm.Actor{Username: "earlier"}},
	})

	require.Len(t, repo.sessions, 1)
	got := repo.sessions[0]
	require.Equal(t, 2, got.RoundsLost)
	require.Equal(t, alarm.IdleReasonWon, got.EndReason)
	require.Nil(t, got.EndedBy)
	require.Equal(t, 2*time.Minute, got.Duration())
}

// TestRecorder_IgnoresIdleWithoutActivation verifies clearing a scheduled alarm records nothing.
func TestRecorder_IgnoresIdleWithoutActivation(t *testing.T) {
	t.Parallel()

	repo := new(fakeRepository)
	rec := NewRecorder(context.Background(), repo)

	rec.Handle(context.Background(), events.Event{Kind: events.KindStateChanged, At: t0})
	rec.Handle(context.Background(), events.Event{Kind: events.KindAlarmIdle, At: t0, Reason: alarm.IdleReasonCancelled})
	require.Empty(t, repo.sessions)
}

// TestRecorder_AppendFailureIsLogged verifies a repository error does not wedge the recorder.
func TestRecorder_AppendFailureIsLogged(t *testing.T) {
	t.Parallel()

	repo := &fakeRepository{err: errors.New("disk full")}
	rec := NewRecorder(context.Background(), repo)
	ctx := context.Background()

	rec.Handle(ctx, events.Event{Kind: events.KindAlarmActivated, At: t0})
	rec.Handle(ctx, events.Event{Kind: events.KindAlarmIdle, At: t0, Reason: alarm.IdleReasonSnoozed})
	require.Nil(t, rec.current)

	repo.err = nil
	actor := &alarm.Actor{Hostname: "bedroom", Username: "o.shokin"}
	rec.Handle(ctx, events.Event{Kind: events.KindAlarmActivated, At: t0})
	rec.Handle(ctx, events.Event{Kind: events.KindAlarmIdle, At: t0, Reason: alarm.IdleReasonSnoozed, State: alarm.State{LastActor: actor}})
	require.Len(t, repo.sessions, 1)
	require.Equal(t, actor, repo.sessions[0].EndedBy)
}

// TestRecorder_RunStopsWhenBusCloses verifies Run records from a live bus and returns on close.
func TestRecorder_RunStopsWhenBusCloses(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		repo := new(fakeRepository)
		bus := events.NewBus()
		rec := NewRecorder(context.Background(), repo)

		done := make(chan error, 1)
		go func() { done <- rec.Run(context.Background(), bus) }()

		synctest.Wait()
		require.Equal(t, 1, bus.Len())

		bus.Publish(events.Event{Kind: events.KindAlarmActivated, At: t0})
		bus.Publish(events.Event{Kind: events.KindAlarmIdle, At: t0.Add(time.Minute), Reason: alarm.IdleReasonCancelled})
		synctest.Wait()

		bus.Close()
		require.NoError(t, <-done)
		require.Len(t, repo.sessions, 1)
	})
}

// TestRecorder_RunStopsOnContext verifies cancellation ends Run and releases the subscription.
func TestRecorder_RunStopsOnContext(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		bus := events.NewBus()
		rec := NewRecorder(context.Background(), new(fakeRepository))

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- rec.Run(ctx, bus) }()

		synctest.Wait()
		cancel()
		require.NoError(t, <-done)
		require.Equal(t, 0, bus.Len())
	})
}

// TestRecorder_RecordsSessionEndedByShutdown verifies the idle event published while the engine stops is recorded.
func TestRecorder_RecordsSessionEndedByShutdown(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		repo := new(fakeRepository)
		bus := events.NewBus()
		rec := NewRecorder(context.Background(), repo)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- rec.Run(ctx, bus) }()

		synctest.Wait()
		bus.Publish(events.Event{Kind: events.KindAlarmActivated, At: t0})
		synctest.Wait()

		// Shutdown order of the server: the shared ctx ends first, then the
		// engine cancels the ringing alarm and closes the bus.
		cancel()
		synctest.Wait()

		bus.Publish(events.Event{Kind: events.KindAlarmIdle, At: t0.Add(time.Minute), Reason: alarm.IdleReasonCancelled})
		bus.Close()

		require.NoError(t, <-done)
		require.Len(t, repo.sessions, 1)
		require.Equal(t, alarm.IdleReasonCancelled, repo.sessions[0].EndReason)
		require.Nil(t, repo.sessions[0].EndedBy)
	})
}

// TestRecorder_ShutdownGraceIsBounded verifies Run returns when the source never closes.
func TestRecorder_ShutdownGraceIsBounded(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		repo := new(fakeRepository)
		bus := events.NewBus()
		rec := NewRecorder(context.Background(), repo)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- rec.Run(ctx, bus) }()

		synctest.Wait()
		bus.Publish(events.Event{Kind: events.KindAlarmActivated, At: t0})
		synctest.Wait()

		start := time.Now()

		cancel()
		require.NoError(t, <-done)
		require.Equal(t, shutdownGrace, time.Since(start))
		require.Empty(t, repo.sessions)
		require.Zero(t, bus.Len())
	})
}
