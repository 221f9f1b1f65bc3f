package alarm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oshokin/wake-gate/internal/clock"
	domain "github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/events"
	"github.com/oshokin/wake-gate/internal/logger"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/repository/journal"
	"github.com/oshokin/wake-gate/internal/service/engine"
)

// Service abstracts the engine operations the transport layer depends on.
type Service interface {
	Schedule(ctx context.Context, actor *domain.Actor, hour, minute int) (*engine.Snapshot, error)
	Cancel(ctx context.Context, actor *domain.Actor) (*engine.Snapshot, error)
	SnoozeNow(ctx context.Context, actor *domain.Actor) (*engine.Snapshot, error)
	Tap(ctx context.Context, actor *domain.Actor, tileID uuid.UUID) (*engine.Snapshot, error)
	GetState(ctx context.Context) (*engine.Snapshot, error)
	Subscribe(buffer int) *events.Subscription
}

// Journal lists recorded sessions, newest first.
type Journal interface {
	List(ctx context.Context, limit int) ([]*domain.Session, error)
}

const (
	// DefaultSessionLimit is used when ListSessions gets no limit.
	DefaultSessionLimit = 20
	// watchBuffer is the per-stream event buffer.
	watchBuffer = 64
)

// Server implements the AlarmService gRPC API.
type Server struct {
	pb.UnimplementedAlarmServiceServer

	// service provides the engine operations.
	service Service
	// journal serves ListSessions; nil disables it.
	journal Journal
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service, journal Journal) *Server {
	return &Server{
		service: service,
		journal: journal,
	}
}

// Schedule arms the alarm for the next hour:minute.
func (s *Server) Schedule(ctx context.Context, req *pb.ScheduleRequest) (*pb.AlarmState, error) {
	actor, err := requireActor(req, req.GetActor())
	if err != nil {
		return nil, err
	}

	snap, err := s.service.Schedule(ctx, actor, int(req.GetHour()), int(req.GetMinute()))
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return toProtoSnapshot(snap), nil
}

// Cancel clears the alarm from any phase.
func (s *Server) Cancel(ctx context.Context, req *pb.CancelRequest) (*pb.AlarmState, error) {
	actor, err := requireActor(req, req.GetActor())
	if err != nil {
		return nil, err
	}

	snap, err := s.service.Cancel(ctx, actor)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return toProtoSnapshot(snap), nil
}

// SnoozeNow snoozes a ringing alarm without solving the puzzle.
func (s *Server) SnoozeNow(ctx context.Context, req *pb.SnoozeNowRequest) (*pb.AlarmState, error) {
	actor, err := requireActor(req, req.GetActor())
	if err != nil {
		return nil, err
	}

	snap, err := s.service.SnoozeNow(ctx, actor)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return toProtoSnapshot(snap), nil
}

// Tap taps a tile of the current round.
func (s *Server) Tap(ctx context.Context, req *pb.TapRequest) (*pb.AlarmState, error) {
	actor, err := requireActor(req, req.GetActor())
	if err != nil {
		return nil, err
	}

	tileID, err := uuid.Parse(req.GetTileId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "tile_id must be a UUID")
	}

	snap, err := s.service.Tap(ctx, actor, tileID)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return toProtoSnapshot(snap), nil
}

// GetState returns the current alarm state and round.
func (s *Server) GetState(ctx context.Context, _ *pb.GetStateRequest) (*pb.AlarmState, error) {
	snap, err := s.service.GetState(ctx)
	if err != nil {
		return nil, toStatus(ctx, err)
	}

	return toProtoSnapshot(snap), nil
}

// WatchEvents streams engine events until the client goes away. A client
// that cannot keep up is disconnected with ResourceExhausted.
func (s *Server) WatchEvents(req *pb.WatchEventsRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	ctx := stream.Context()
	if actor := req.GetRequestingActor(); actor != nil {
		ctx = logger.WithKV(ctx, "watcher", journal.ActorFromProto(actor).String())
	}

	sub := s.service.Subscribe(watchBuffer)
	defer func() { _ = sub.Close() }()

	logger.Debug(ctx, "Watch stream opened")

	for {
		select {
		case <-ctx.Done():
			return nil
		case e, ok := <-sub.C():
			if !ok {
				if sub.Dropped() {
					logger.Warn(ctx, "Watch stream fell behind and was dropped")

					return status.Error(codes.ResourceExhausted, "event stream fell behind")
				}

				return status.Error(codes.Unavailable, "engine stopped")
			}

			if err := stream.Send(toProtoEvent(&e)); err != nil {
				return err
			}
		}
	}
}

// ListSessions returns recorded ringing sessions, newest first.
func (s *Server) ListSessions(ctx context.Context, req *pb.ListSessionsRequest) (*pb.SessionJournal, error) {
	if s.journal == nil {
		return nil, status.Error(codes.Unimplemented, "journal is disabled")
	}

	limit := int(req.GetLimit())

	switch {
	case limit < 0:
		return nil, status.Error(codes.InvalidArgument, "limit must not be negative")
	case limit == 0:
		limit = DefaultSessionLimit
	case limit > journal.DefaultMaxSessions:
		limit = journal.DefaultMaxSessions
	}

	sessions, err := s.journal.List(ctx, limit)
	if err != nil && !errors.Is(err, journal.ErrNotFound) {
		logger.ErrorKV(ctx, "Failed to list sessions", "error", err)

		return nil, status.Error(codes.Internal, "unable to read journal")
	}

	response := &pb.SessionJournal{Sessions: make([]*pb.Session, 0, len(sessions))}
	for _, session := range sessions {
		response.Sessions = append(response.Sessions, journal.ToProto(session))
	}

	return response, nil
}

// requireActor validates that the request and its actor are present.
func requireActor[T any](req *T, actor *pb.SystemActor) (*domain.Actor, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	if actor == nil {
		return nil, status.Error(codes.InvalidArgument, "actor is required")
	}

	return journal.ActorFromProto(actor), nil
}

// toStatus maps engine errors to gRPC status codes.
func toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidScheduleInput):
		return status.Error(codes.InvalidArgument, "hour must be 0-23 and minute 0-59")
	case errors.Is(err, clock.ErrLoopStopped):
		return status.Error(codes.Unavailable, "engine stopped")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		logger.ErrorKV(ctx, "Engine operation failed", "error", err)

		return status.Error(codes.Internal, "engine operation failed")
	}
}
