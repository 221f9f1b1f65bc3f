package alarm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestActorClone verifies that Clone returns a deep copy and handles nil safely.
func TestActorClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Actor)(nil).Clone())

	a := &Actor{
		Hostname: "bedroom-mac",
		Username: "sleepyhead",
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)
	require.Equal(t, "sleepyhead@bedroom-mac", a.String())
	require.Equal(t, "<timer>", (*Actor)(nil).String())
}

// TestStateClone verifies that State.Clone copies fields and deep-copies LastActor.
func TestStateClone(t *testing.T) {
	t.Parallel()

	ts := time.Now().UTC().Truncate(time.Second)
	s := State{
		Phase:     PhaseScheduled,
		WakeAt:    ts.Add(time.Hour),
		Timestamp: ts,
		LastActor: &Actor{
			Hostname: "bedroom-mac",
			Username: "sleepyhead",
		},
	}

	c := s.Clone()
	require.Equal(t, s.Phase, c.Phase)
	require.Equal(t, s.WakeAt, c.WakeAt)
	require.Equal(t, s.Timestamp, c.Timestamp)
	require.Equal(t, s.LastActor, c.LastActor)

	// Ensure actor pointer is cloned.
	require.NotSame(t, s.LastActor, c.LastActor)
}

// TestValidateTime checks the accepted hour and minute ranges.
func TestValidateTime(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateTime(0, 0))
	require.NoError(t, ValidateTime(23, 59))

	for _, tc := range [][2]int{{-1, 0}, {24, 0}, {0, -1}, {0, 60}, {99, 99}} {
		require.ErrorIs(t, ValidateTime(tc[0], tc[1]), ErrInvalidScheduleInput, "hour=%d minute=%d", tc[0], tc[1])
	}
}

// TestNextOccurrence covers later today, rollover to tomorrow and the current minute.
func TestNextOccurrence(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("test", 3*60*60)
	now := time.Date(2026, time.March, 10, 23, 59, 50, 0, loc)

	// Midnight has passed today, so it rolls to the next day.
	at, due := NextOccurrence(now, 0, 0)
	require.False(t, due)
	require.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, loc), at)
	require.Equal(t, 10*time.Second, at.Sub(now))

	// Later today.
	now = time.Date(2026, time.March, 10, 6, 15, 0, 0, loc)
	at, due = NextOccurrence(now, 7, 30)
	require.False(t, due)
	require.Equal(t, time.Date(2026, time.March, 10, 7, 30, 0, 0, loc), at)

	// Same minute: due immediately.
	now = time.Date(2026, time.March, 10, 7, 30, 42, 0, loc)
	at, due = NextOccurrence(now, 7, 30)
	require.True(t, due)
	require.False(t, at.After(now))

	// Exactly now is due too.
	now = time.Date(2026, time.March, 10, 7, 30, 0, 0, loc)
	_, due = NextOccurrence(now, 7, 30)
	require.True(t, due)

	// End of month rolls into the next month.
	now = time.Date(2026, time.January, 31, 8, 0, 0, 0, loc)
	at, due = NextOccurrence(now, 6, 0)
	require.False(t, due)
	require.Equal(t, time.Date(2026, time.February, 1, 6, 0, 0, 0, loc), at)
}

// TestIdleReasonAndSession checks reason names and the session duration.
func TestIdleReasonAndSession(t *testing.T) {
	t.Parallel()

	require.Equal(t, "won", IdleReasonWon.String())
	require.Equal(t, "cancelled", IdleReasonCancelled.String())
	require.Equal(t, "unknown", IdleReason(42).String())

	start := time.Date(2026, time.October, 19, 7, 0, 0, 0, time.UTC)
	s := Session{StartedAt: start, EndedAt: start.Add(90 * time.Second)}
	require.Equal(t, 90*time.Second, s.Duration())
}
