package integration

import (
	"context"
	"net"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/wake-gate/internal/config"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/service/common"
	"github.com/oshokin/wake-gate/internal/service/server"
)

// reservePort returns a free loopback address.
func reservePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	addr := l.Addr().String()
	_ = l.Close()

	return addr
}

// startGRPC starts the real server with sound, volume and sleep inhibition disabled.
// Returns a stop function that cancels the server and waits for it to exit.
func startGRPC(t *testing.T, addr, journalPath string) (stop func()) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cfgPath := filepath.Join(t.TempDir(), "settings.yaml")

	settings := config.Default()
	settings.ServerAddress = addr
	settings.JournalFile = journalPath
	settings.InhibitSleep = false
	settings.Sound.Backend = "none"
	settings.Volume.Backend = "none"

	require.NoError(t, config.Save(cfgPath, settings))

	done := make(chan struct{})

	go func() {
		defer close(done)

		_ = server.Run(ctx, &server.Options{ConfigPath: cfgPath}) //nolint:errcheck // Failures surface as client errors.
	}()

	return func() {
		cancel()
		<-done
	}
}

// dial connects to the test server and waits until it reports SERVING.
func dial(t *testing.T, addr string) *common.Client {
	t.Helper()

	c, err := common.Dial(context.Background(), addr, common.WithCallTimeout(3*time.Second))
	require.NoError(t, err)

	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	require.NoError(t, c.WaitForHealth(ctx, t.Logf))

	return c
}

// testActor is the actor used by every integration call.
func testActor() *pb.SystemActor {
	return &pb.SystemActor{
		Hostname: "test-hostname",
		Username: "test-user",
	}
}

// TestGRPC_ScheduleAndCancel arms a future alarm and clears it.
func TestGRPC_ScheduleAndCancel(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	stop := startGRPC(t, addr, filepath.Join(t.TempDir(), "journal.json"))
	defer stop()

	c := dial(t, addr)
	ctx := context.Background()

	initial, err := c.GetState(ctx, testActor())
	require.NoError(t, err)
	require.Equal(t, pb.AlarmPhase_ALARM_PHASE_IDLE, initial.GetPhase())

	// Two hours ahead is never the current minute.
	wake := time.Now().Add(2 * time.Hour)

	scheduled, err := c.Schedule(ctx, testActor(), wake.Hour(), wake.Minute())
	require.NoError(t, err)
	require.Equal(t, pb.AlarmPhase_ALARM_PHASE_SCHEDULED, scheduled.GetPhase())
	require.Equal(t, wake.Hour(), scheduled.GetWakeAt().AsTime().Local().Hour())
	require.Equal(t, "test-user", scheduled.GetLastActor().GetUsername())

	_, err = c.Schedule(ctx, testActor(), 25, 0)
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	cancelled, err := c.Cancel(ctx, testActor())
	require.NoError(t, err)
	require.Equal(t, pb.AlarmPhase_ALARM_PHASE_IDLE, cancelled.GetPhase())
	require.Nil(t, cancelled.GetWakeAt())

	journal, err := c.ListSessions(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, journal.GetSessions())
}

// TestGRPC_RingSnoozeAndJournal rings immediately, streams the round, snoozes and reads the journal.
func TestGRPC_RingSnoozeAndJournal(t *testing.T) {
	t.Parallel()

	addr := reservePort(t)
	stop := startGRPC(t, addr, filepath.Join(t.TempDir(), "journal.json"))
	defer stop()

	c := dial(t, addr)
	ctx := context.Background()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()

	var (
		mu       sync.Mutex
		received []*pb.Event
	)

	watchDone := make(chan error, 1)

	go func() {
		watchDone <- c.WatchEvents(watchCtx, testActor(), func(e *pb.Event) {
			mu.Lock()
			received = append(received, e)
			mu.Unlock()
		})
	}()

	seen := func(kind pb.EventKind) bool {
		mu.Lock()
		defer mu.Unlock()

		for _, e := range received {
			if e.GetKind() == kind {
				return true
			}
		}

		return false
	}

	// Arm a distant alarm until the watcher reports it, so the stream is known to be live.
	require.Eventually(t, func() bool {
		later := time.Now().Add(2 * time.Hour)
		_, _ = c.Schedule(ctx, testActor(), later.Hour(), later.Minute())

		return seen(pb.EventKind_EVENT_KIND_STATE_CHANGED)
	}, 10*time.Second, 100*time.Millisecond)

	// The current minute rings right away; retry across a minute boundary.
	var ringing *pb.AlarmState

	require.Eventually(t, func() bool {
		now := time.Now()

		state, err := c.Schedule(ctx, testActor(), now.Hour(), now.Minute())
		if err != nil || state.GetPhase() != pb.AlarmPhase_ALARM_PHASE_RINGING {
			return false
		}

		ringing = state

		return true
	}, 10*time.Second, 100*time.Millisecond)

	require.NotNil(t, ringing.GetRound())
	require.Len(t, ringing.GetRound().GetTiles(), 25)

	for _, tile := range ringing.GetRound().GetTiles() {
		if !tile.GetRevealed() {
			require.False(t, tile.GetCorrect())
		}
	}

	require.Eventually(t, func() bool {
		return seen(pb.EventKind_EVENT_KIND_ALARM_ACTIVATED) && seen(pb.EventKind_EVENT_KIND_ROUND_CHANGED)
	}, 5*time.Second, 20*time.Millisecond)

	snoozed, err := c.SnoozeNow(ctx, testActor())
	require.NoError(t, err)
	require.Equal(t, pb.AlarmPhase_ALARM_PHASE_SNOOZED, snoozed.GetPhase())
	require.Nil(t, snoozed.GetRound())
	require.WithinDuration(t, time.Now().Add(15*time.Minute), snoozed.GetResumeAt().AsTime(), time.Minute)

	require.Eventually(t, func() bool {
		journal, listErr := c.ListSessions(ctx, 5)
		if listErr != nil || len(journal.GetSessions()) == 0 {
			return false
		}

		session := journal.GetSessions()[0]

		return session.GetEndReason() == pb.IdleReason_IDLE_REASON_SNOOZED &&
			session.GetEndedBy().GetUsername() == "test-user"
	}, 5*time.Second, 50*time.Millisecond)

	_, err = c.Cancel(ctx, testActor())
	require.NoError(t, err)

	stopWatch()
	require.NoError(t, <-watchDone)
}
