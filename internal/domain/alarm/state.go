package alarm

import (
	"errors"
	"time"
)

// Phase is the alarm lifecycle state.
type Phase int

const (
	// PhaseIdle means no wake time is armed.
	PhaseIdle Phase = iota
	// PhaseScheduled means a wake timer is armed for WakeAt.
	PhaseScheduled
	// PhaseRinging means sound, volume enforcement and the puzzle gate are active.
	PhaseRinging
	// PhaseSnoozed means the alarm was dismissed and re-rings at ResumeAt.
	PhaseSnoozed
)

// String returns a lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScheduled:
		return "scheduled"
	case PhaseRinging:
		return "ringing"
	case PhaseSnoozed:
		return "snoozed"
	default:
		return "unknown"
	}
}

// ErrInvalidScheduleInput is returned when hour or minute is out of range.
var ErrInvalidScheduleInput = errors.New("invalid schedule input")

// Actor identifies who performed an action in the system.
type Actor struct {
	// Hostname is the machine name where the action was performed.
	Hostname string
	// Username is the system user who triggered the action.
	Username string
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	if a == nil {
		return nil
	}

	cloned := *a

	return &cloned
}

// String renders the actor as user@host.
func (a *Actor) String() string {
	if a == nil {
		return "<timer>"
	}

	return a.Username + "@" + a.Hostname
}

// State represents the alarm status at a specific point in time.
type State struct {
	// Phase is the current lifecycle phase.
	Phase Phase
	// WakeAt is the armed wake instant; only set while Scheduled.
	WakeAt time.Time
	// ResumeAt is the snooze expiry; only set while Snoozed.
	ResumeAt time.Time
	// Timestamp is when the alarm state was last changed.
	Timestamp time.Time
	// LastActor is the user who issued the last command, nil for timer-driven changes.
	LastActor *Actor
}

// Clone returns a copy of the state to avoid leaking internal references.
func (s *State) Clone() *State {
	return &State{
		Phase:     s.Phase,
		WakeAt:    s.WakeAt,
		ResumeAt:  s.ResumeAt,
		Timestamp: s.Timestamp,
		LastActor: s.LastActor.Clone(),
	}
}

// ValidateTime reports ErrInvalidScheduleInput unless hour is in [0,23] and minute in [0,59].
func ValidateTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return ErrInvalidScheduleInput
	}

	return nil
}

// NextOccurrence returns the wake instant for hour:minute relative to now and
// whether it is due immediately. The instant is today's hour:minute:00 when it
// has not passed yet, otherwise the same time tomorrow. When today's instant
// falls inside the current minute it is considered due and returned as-is.
func NextOccurrence(now time.Time, hour, minute int) (time.Time, bool) {
	year, month, day := now.Date()
	target := time.Date(year, month, day, hour, minute, 0, 0, now.Location())

	if target.After(now) {
		return target, false
	}

	if now.Sub(target) < time.Minute {
		return target, true
	}

	return time.Date(year, month, day+1, hour, minute, 0, 0, now.Location()), false
}

// IdleReason explains why the alarm went idle.
type IdleReason uint8

const (
	// IdleReasonNone is used when no reason applies.
	IdleReasonNone IdleReason = iota
	// IdleReasonWon means the puzzle was solved.
	IdleReasonWon
	// IdleReasonSnoozed means the user snoozed without solving.
	IdleReasonSnoozed
	// IdleReasonCancelled means the alarm was cancelled.
	IdleReasonCancelled
	// IdleReasonRescheduled means a new schedule replaced the ringing alarm.
	IdleReasonRescheduled
)

// String returns a lowercase name of the reason.
func (r IdleReason) String() string {
	switch r {
	case IdleReasonWon:
		return "won"
	case IdleReasonSnoozed:
		return "snoozed"
	case IdleReasonCancelled:
		return "cancelled"
	case IdleReasonRescheduled:
		return "rescheduled"
	case IdleReasonNone:
		return "none"
	default:
		return "unknown"
	}
}

// Session is one ringing episode, from the first ring to the moment the
// alarm stopped ringing.
type Session struct {
	// StartedAt is when the alarm started ringing.
	StartedAt time.Time
	// EndedAt is when ringing stopped.
	EndedAt time.Time
	// RoundsLost counts failed puzzle rounds.
	RoundsLost int
	// EndReason tells how ringing stopped.
	EndReason IdleReason
	// EndedBy is the user who stopped it, nil when the puzzle was solved.
	EndedBy *Actor
}

// Duration returns how long the alarm rang.
func (s *Session) Duration() time.Duration {
	return s.EndedAt.Sub(s.StartedAt)
}
