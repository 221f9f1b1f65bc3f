package events

import (
	"time"

	"github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/domain/puzzle"
)

// Kind identifies what happened.
type Kind uint8

const (
	// KindUnknown is the zero value and is never published.
	KindUnknown Kind = iota
	// KindAlarmActivated is published when the alarm starts ringing.
	KindAlarmActivated
	// KindAlarmIdle is published when ringing stops or the alarm is cleared.
	KindAlarmIdle
	// KindRoundChanged is published on every puzzle round change.
	KindRoundChanged
	// KindStateChanged is published on transitions into Scheduled or Snoozed.
	KindStateChanged
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindAlarmActivated:
		return "alarm-activated"
	case KindAlarmIdle:
		return "alarm-idle"
	case KindRoundChanged:
		return "round-changed"
	case KindStateChanged:
		return "state-changed"
	default:
		return "unknown"
	}
}

// Event is a single notification. State is always set; Round only for
// KindRoundChanged.
type Event struct {
	// Kind is the event type.
	Kind Kind
	// At is the engine time of the event.
	At time.Time
	// Reason is set for KindAlarmIdle.
	Reason alarm.IdleReason
	// State is the alarm state after the transition.
	State alarm.State
	// Round is the round snapshot for KindRoundChanged.
	Round *puzzle.Snapshot
}
