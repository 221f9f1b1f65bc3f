package alarm

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/wake-gate/internal/clock"
	domain "github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/repository/journal"
	"github.com/oshokin/wake-gate/internal/service/engine"
)

// fakeService implements the Service interface for unit testing the transport.
type fakeService struct {
	// snap is returned by every operation.
	snap *engine.Snapshot
	// err is returned by every operation when set.
	err error
	// lastActor is the actor of the last command.
	lastActor *domain.Actor
	// lastTile is the tile of the last Tap.
	lastTile uuid.UUID
	// bus backs Subscribe.
	bus *events.Bus
}

func newFakeService() *fakeService {
	return &fakeService{
		snap: &engine.Snapshot{State: domain.State{Phase: domain.PhaseIdle}},
		bus:  events.NewBus(),
	}
}

func (f *fakeService) result(actor *domain.Actor) (*engine.Snapshot, error) {
	f.lastActor = actor
	if f.err != nil {
		return nil, f.err
	}

	return f.snap, nil
}

func (f *fakeService) Schedule(_ context.Context, actor *domain.Actor, hour, minute int) (*engine.Snapshot, error) {
	if err := domain.ValidateTime(hour, minute); err != nil {
		return nil, err
	}

	return f.result(actor)
}

func (f *fakeService) Cancel(_ context.Context, actor *domain.Actor) (*engine.Snapshot, error) {
	return f.result(actor)
}

func (f *fakeService) SnoozeNow(_ context.Context, actor *domain.Actor) (*engine.Snapshot, error) {
	return f.result(actor)
}

func (f *fakeService) Tap(_ context.Context, actor *domain.Actor, tileID uuid.UUID) (*engine.Snapshot, error) {
	f.lastTile = tileID

	return f.result(actor)
}

func (f *fakeService) GetState(context.Context) (*engine.Snapshot, error) {
	return f.result(nil)
}

func (f *fakeService) Subscribe(buffer int) *events.Subscription {
	return f.bus.Subscribe(buffer)
}

// fakeJournal serves canned sessions.
type fakeJournal struct {
	// sessions is returned by List, truncated to the limit.
	sessions []*domain.Session
	// err is returned by List when set.
	err error
	// limit is the last requested limit.
	limit int
}

func (f *fakeJournal) List(_ context.Context, limit int) ([]*domain.Session, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}

	return f.sessions[:min(limit, len(f.sessions))], nil
}

// fakeStream captures events sent to a watcher.
type fakeStream struct {
	grpc.ServerStream

	// ctx is the stream context.
	ctx context.Context
	// mu protects sent.
	mu sync.Mutex
	// sent holds every event sent.
	sent []*pb.Event
	// err fails Send when set.
	err error
}

func (s *fakeStream) Context() context.Context { return s.ctx }

func (s *fakeStream) Send(e *pb.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return s.err
	}

	s.sent = append(s.sent, e)

	return nil
}

func (s *fakeStream) events() []*pb.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]*pb.Event(nil), s.sent...)
}

func testActor() *pb.SystemActor {
	return &pb.SystemActor{Hostname: "test-hostname", Username: "test-user"}
}

// TestServer_Validation ensures invalid requests return InvalidArgument errors.
func TestServer_Validation(t *testing.T) {
	t.Parallel()

	s := NewServer(newFakeService(), nil)
	ctx := context.Background()

	_, err := s.Schedule(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Cancel(ctx, &pb.CancelRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Schedule(ctx, &pb.ScheduleRequest{Actor: testActor(), Hour: 24})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.Tap(ctx, &pb.TapRequest{Actor: testActor(), TileId: "seven"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.ListSessions(ctx, &pb.ListSessionsRequest{})
	require.Equal(t, codes.Unimplemented, status.Code(err))
}

// TestServer_Commands exercises every unary command against the fake service.
func TestServer_Commands(t *testing.T) {
	t.Parallel()

	service := newFakeService()
	wakeAt := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	service.snap = &engine.Snapshot{State: domain.State{
		Phase:     domain.PhaseScheduled,
		WakeAt:    wakeAt,
		Timestamp: wakeAt.Add(-8 * time.Hour),
		LastActor: &domain.Actor{Hostname: "test-hostname", Username: "test-user"},
	}}

	s := NewServer(service, nil)
	ctx := context.Background()

	response, err := s.Schedule(ctx, &pb.ScheduleRequest{Actor: testActor(), Hour: 7})
	require.NoError(t, err)
	require.Equal(t, pb.AlarmPhase_ALARM_PHASE_SCHEDULED, response.GetPhase())
	require.Equal(t, wakeAt, response.GetWakeAt().AsTime())
	require.Nil(t, response.GetResumeAt())
	require.Nil(t, response.GetRound())
	require.Equal(t, "test-user", response.GetLastActor().GetUsername())
	require.Equal(t, "test-hostname", service.lastActor.Hostname)

	_, err = s.Cancel(ctx, &pb.CancelRequest{Actor: testActor()})
	require.NoError(t, err)

	_, err = s.SnoozeNow(ctx, &pb.SnoozeNowRequest{Actor: testActor()})
	require.NoError(t, err)

	tile := uuid.New()
	_, err = s.Tap(ctx, &pb.TapRequest{Actor: testActor(), TileId: tile.String()})
	require.NoError(t, err)
	require.Equal(t, tile, service.lastTile)

	_, err = s.GetState(ctx, new(pb.GetStateRequest))
	require.NoError(t, err)
}

// TestServer_RoundConversion verifies the round rides inside the state with hidden answers masked.
func TestServer_RoundConversion(t *testing.T) {
	t.Parallel()

	service := newFakeService()
	hidden, shown := uuid.New(), uuid.New()
	service.snap = &engine.Snapshot{
		State: domain.State{Phase: domain.PhaseRinging},
		Round: &puzzle.Snapshot{
			Generation: 3,
			Phase:      puzzle.PhaseInteractive,
			Accent:     puzzle.Color{R: 0xff, G: 0x80, B: 0x01},
			Tiles: []puzzle.TileView{
				{ID: hidden},
				{ID: shown, Revealed: true, Correct: true},
			},
		},
	}

	response, err := NewServer(service, nil).GetState(context.Background(), nil)
	require.NoError(t, err)

	round := response.GetRound()
	require.Equal(t, pb.AlarmPhase_ALARM_PHASE_RINGING, response.GetPhase())
	require.Equal(t, uint64(3), round.GetGeneration())
	require.Equal(t, pb.RoundPhase_ROUND_PHASE_INTERACTIVE, round.GetPhase())
	require.Equal(t, pb.RoundOutcome_ROUND_OUTCOME_UNSPECIFIED, round.GetOutcome())
	require.Equal(t, "#ff8001", round.GetAccent())
	require.Len(t, round.GetTiles(), 2)
	require.Equal(t, hidden.String(), round.GetTiles()[0].GetId())
	require.False(t, round.GetTiles()[0].GetCorrect())
	require.True(t, round.GetTiles()[1].GetCorrect())
}

// TestServer_ErrorMapping checks engine errors become the right status codes.
func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		code codes.Code
	}{
		{err: fmt.Errorf("cancel: %w", clock.ErrLoopStopped), code: codes.Unavailable},
		{err: fmt.Errorf("cancel: %w", context.DeadlineExceeded), code: codes.DeadlineExceeded},
		{err: context.Canceled, code: codes.Canceled},
		{err: errors.New("boom"), code: codes.Internal},
	}

	for _, tc := range cases {
		service := newFakeService()
		service.err = tc.err

		_, err := NewServer(service, nil).Cancel(context.Background(), &pb.CancelRequest{Actor: testActor()})
		require.Equal(t, tc.code, status.Code(err), tc.err.Error())
	}
}

// TestServer_ListSessions checks limits, conversion and a missing journal file.
func TestServer_ListSessions(t *testing.T) {
	t.Parallel()

	started := time.Date(2026, 3, 2, 7, 0, 0, 0, time.UTC)
	store := &fakeJournal{sessions: []*domain.Session{
		{StartedAt: started, EndedAt: started.Add(time.Minute), RoundsLost: 4, EndReason: domain.IdleReasonWon},
		{StartedAt: started.Add(-24 * time.Hour), EndReason: domain.IdleReasonCancelled},
	}}

	s := NewServer(newFakeService(), store)
	ctx := context.Background()

	response, err := s.ListSessions(ctx, &pb.ListSessionsRequest{})
	require.NoError(t, err)
	require.Equal(t, DefaultSessionLimit, store.limit)
	require.Len(t, response.GetSessions(), 2)
	require.Equal(t, uint32(4), response.GetSessions()[0].GetRoundsLost())
	require.Equal(t, pb.IdleReason_IDLE_REASON_WON, response.GetSessions()[0].GetEndReason())

	response, err = s.ListSessions(ctx, &pb.ListSessionsRequest{Limit: 1})
	require.NoError(t, err)
	require.Len(t, response.GetSessions(), 1)

	_, err = s.ListSessions(ctx, &pb.ListSessionsRequest{Limit: 100000})
	require.NoError(t, err)
	require.Equal(t, journal.DefaultMaxSessions, store.limit)

	_, err = s.ListSessions(ctx, &pb.ListSessionsRequest{Limit: -1})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	store.err = journal.ErrNotFound
	response, err = s.ListSessions(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, response.GetSessions())

	store.err = errors.New("permission denied")
	_, err = s.ListSessions(ctx, nil)
	require.Equal(t, codes.Internal, status.Code(err))
}

// TestServer_WatchEvents streams bus events until the client cancels.
func TestServer_WatchEvents(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		service := newFakeService()
		s := NewServer(service, nil)

		ctx, cancel := context.WithCancel(context.Background())
		stream := &fakeStream{ctx: ctx}

		done := make(chan error, 1)
		go func() {
			done <- s.WatchEvents(&pb.WatchEventsRequest{RequestingActor: testActor()}, stream)
		}()

		synctest.Wait()
		require.Equal(t, 1, service.bus.Len())

		at := time.Now()
		service.bus.Publish(events.Event{Kind: events.KindAlarmActivated, At: at, State: domain.State{Phase: domain.PhaseRinging}})
		service.bus.Publish(events.Event{
			Kind:  events.KindRoundChanged,
			At:    at,
			State: domain.State{Phase: domain.PhaseRinging},
			Round: &puzzle.Snapshot{Generation: 1, Phase: puzzle.PhasePreview},
		})
		service.bus.Publish(events.Event{Kind: events.KindAlarmIdle, At: at, Reason: domain.IdleReasonSnoozed})
		synctest.Wait()

		sent := stream.events()
		require.Len(t, sent, 3)
		require.Equal(t, pb.EventKind_EVENT_KIND_ALARM_ACTIVATED, sent[0].GetKind())
		require.Equal(t, pb.RoundPhase_ROUND_PHASE_PREVIEW, sent[1].GetState().GetRound().GetPhase())
		require.Equal(t, pb.IdleReason_IDLE_REASON_SNOOZED, sent[2].GetReason())
		require.Equal(t, pb.AlarmPhase_ALARM_PHASE_IDLE, sent[2].GetState().GetPhase())

		cancel()
		require.NoError(t, <-done)
		require.Equal(t, 0, service.bus.Len())
	})
}

// TestServer_WatchEventsEnds checks the codes used when the engine ends the stream.
func TestServer_WatchEventsEnds(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		service := newFakeService()
		s := NewServer(service, nil)

		done := make(chan error, 1)
		go func() { done <- s.WatchEvents(new(pb.WatchEventsRequest), &fakeStream{ctx: context.Background()}) }()

		synctest.Wait()
		service.bus.Close()
		require.Equal(t, codes.Unavailable, status.Code(<-done))

		stream := &fakeStream{ctx: context.Background(), err: errors.New("broken pipe")}
		go func() { done <- s.WatchEvents(new(pb.WatchEventsRequest), stream) }()

		synctest.Wait()
		service.bus.Publish(events.Event{Kind: events.KindStateChanged})
		require.ErrorContains(t, <-done, "broken pipe")
	})
}
