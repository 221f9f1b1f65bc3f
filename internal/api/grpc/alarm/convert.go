package alarm

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	domain "github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/repository/journal"
	"github.com/oshokin/wake-gate/internal/service/engine"
)

// toProtoSnapshot converts an engine snapshot to a pb.AlarmState.
func toProtoSnapshot(snap *engine.Snapshot) *pb.AlarmState {
	if snap == nil {
		return &pb.AlarmState{Phase: pb.AlarmPhase_ALARM_PHASE_IDLE}
	}

	return toProtoState(&snap.State, snap.Round)
}

// toProtoState converts the domain state and an optional round.
func toProtoState(state *domain.State, round *puzzle.Snapshot) *pb.AlarmState {
	return &pb.AlarmState{
		Phase:     toProtoPhase(state.Phase),
		WakeAt:    toTimestamp(state.WakeAt),
		ResumeAt:  toTimestamp(state.ResumeAt),
		Timestamp: toTimestamp(state.Timestamp),
		LastActor: journal.ActorToProto(state.LastActor),
		Round:     toProtoRound(round),
	}
}

func toProtoPhase(phase domain.Phase) pb.AlarmPhase {
	switch phase {
	case domain.PhaseIdle:
		return pb.AlarmPhase_ALARM_PHASE_IDLE
	case domain.PhaseScheduled:
		return pb.AlarmPhase_ALARM_PHASE_SCHEDULED
	case domain.PhaseRinging:
		return pb.AlarmPhase_ALARM_PHASE_RINGING
	case domain.PhaseSnoozed:
		return pb.AlarmPhase_ALARM_PHASE_SNOOZED
	default:
		return pb.AlarmPhase_ALARM_PHASE_UNSPECIFIED
	}
}

// toProtoRound converts a round snapshot; correctness of hidden tiles is already masked.
func toProtoRound(round *puzzle.Snapshot) *pb.Round {
	if round == nil {
		return nil
	}

	tiles := make([]*pb.Tile, 0, len(round.Tiles))
	for _, tile := range round.Tiles {
		tiles = append(tiles, &pb.Tile{
			Id:       tile.ID.String(),
			Revealed: tile.Revealed,
			Correct:  tile.Correct,
		})
	}

	return &pb.Round{
		Generation: round.Generation,
		Phase:      toProtoRoundPhase(round.Phase),
		Outcome:    toProtoOutcome(round.Outcome),
		Judging:    round.Judging,
		Tiles:      tiles,
		Accent:     round.Accent.Hex(),
	}
}

func toProtoRoundPhase(phase puzzle.Phase) pb.RoundPhase {
	switch phase {
	case puzzle.PhaseSetup:
		return pb.RoundPhase_ROUND_PHASE_SETUP
	case puzzle.PhasePreview:
		return pb.RoundPhase_ROUND_PHASE_PREVIEW
	case puzzle.PhaseInteractive:
		return pb.RoundPhase_ROUND_PHASE_INTERACTIVE
	case puzzle.PhaseResolved:
		return pb.RoundPhase_ROUND_PHASE_RESOLVED
	default:
		return pb.RoundPhase_ROUND_PHASE_UNSPECIFIED
	}
}

func toProtoOutcome(outcome puzzle.Outcome) pb.RoundOutcome {
	switch outcome {
	case puzzle.OutcomeWon:
		return pb.RoundOutcome_ROUND_OUTCOME_WON
	case puzzle.OutcomeLost:
		return pb.RoundOutcome_ROUND_OUTCOME_LOST
	default:
		return pb.RoundOutcome_ROUND_OUTCOME_UNSPECIFIED
	}
}

// toProtoEvent converts a bus event; the round rides inside the state.
func toProtoEvent(e *events.Event) *pb.Event {
	return &pb.Event{
		Kind:   toProtoKind(e.Kind),
		At:     toTimestamp(e.At),
		Reason: journal.ReasonToProto(e.Reason),
		State:  toProtoState(&e.State, e.Round),
	}
}

func toProtoKind(kind events.Kind) pb.EventKind {
	switch kind {
	case events.KindAlarmActivated:
		return pb.EventKind_EVENT_KIND_ALARM_ACTIVATED
	case events.KindAlarmIdle:
		return pb.EventKind_EVENT_KIND_ALARM_IDLE
	case events.KindRoundChanged:
		return pb.EventKind_EVENT_KIND_ROUND_CHANGED
	case events.KindStateChanged:
		return pb.EventKind_EVENT_KIND_STATE_CHANGED
	default:
		return pb.EventKind_EVENT_KIND_UNSPECIFIED
	}
}

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}

	return timestamppb.New(t)
}
