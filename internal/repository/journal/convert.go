package journal

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/wake-gate/internal/domain/alarm"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
)

// ToProto converts a domain session into its protobuf form.
func ToProto(session *domain.Session) *pb.Session {
	return &pb.Session{
		StartedAt:  timestampOrNil(session.StartedAt),
		EndedAt:    timestampOrNil(session.EndedAt),
		RoundsLost: uint32(max(session.RoundsLost, 0)), //nolint:gosec // Clamped to non-negative.
		EndReason:  ReasonToProto(session.EndReason),
		EndedBy:    ActorToProto(session.EndedBy),
	}
}

// FromProto converts a protobuf session into the domain model.
func FromProto(session *pb.Session) *domain.Session {
	var startedAt, endedAt time.Time
	if ts := session.GetStartedAt(); ts != nil {
		startedAt = ts.AsTime()
	}

	if ts := session.GetEndedAt(); ts != nil {
		endedAt = ts.AsTime()
	}

	return &domain.Session{
		StartedAt:  startedAt,
		EndedAt:    endedAt,
		RoundsLost: int(session.GetRoundsLost()),
		EndReason:  ReasonFromProto(session.GetEndReason()),
		EndedBy:    ActorFromProto(session.GetEndedBy()),
	}
}

// ReasonToProto maps a domain idle reason to the wire enum.
func ReasonToProto(reason domain.IdleReason) pb.IdleReason {
	switch reason {
	case domain.IdleReasonWon:
		return pb.IdleReason_IDLE_REASON_WON
	case domain.IdleReasonSnoozed:
		return pb.IdleReason_IDLE_REASON_SNOOZED
	case domain.IdleReasonCancelled:
		return pb.IdleReason_IDLE_REASON_CANCELLED
	case domain.IdleReasonRescheduled:
		return pb.IdleReason_IDLE_REASON_RESCHEDULED
	default:
		return pb.IdleReason_IDLE_REASON_UNSPECIFIED
	}
}

// ReasonFromProto maps the wire enum to a domain idle reason.
func ReasonFromProto(reason pb.IdleReason) domain.IdleReason {
	switch reason {
	case pb.IdleReason_IDLE_REASON_WON:
		return domain.IdleReasonWon
	case pb.IdleReason_IDLE_REASON_SNOOZED:
		return domain.IdleReasonSnoozed
	case pb.IdleReason_IDLE_REASON_CANCELLED:
		return domain.IdleReasonCancelled
	case pb.IdleReason_IDLE_REASON_RESCHEDULED:
		return domain.IdleReasonRescheduled
	default:
		return domain.IdleReasonNone
	}
}

// ActorToProto converts a domain actor, keeping nil as nil.
func ActorToProto(actor *domain.Actor) *pb.SystemActor {
	if actor == nil {
		return nil
	}

	return &pb.SystemActor{
		Hostname: actor.Hostname,
		Username: actor.Username,
	}
}

// ActorFromProto converts a protobuf actor, keeping nil as nil.
func ActorFromProto(actor *pb.SystemActor) *domain.Actor {
	if actor == nil {
		return nil
	}

	return &domain.Actor{
		Hostname: actor.GetHostname(),
		Username: actor.GetUsername(),
	}
}

func timestampOrNil(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}
