package journal

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/domain/puzzle"
	"github.com/oshokin/wake-gate/internal/events"
	"github.com/oshokin/wake-gate/internal/logger"
	repository "github.com/oshokin/wake-gate/internal/repository/journal"
)

// Source hands out event subscriptions.
type Source interface {
	Subscribe(buffer int) *events.Subscription
}

// Recorder turns alarm events into journal sessions.
type Recorder struct {
	// repo stores finished sessions.
	repo repository.Repository
	// log is the component logger.
	log *zap.SugaredLogger
	// current is the session being recorded, nil while not ringing.
	current *alarm.Session
	// lostGeneration is the last round generation counted as lost.
	lostGeneration uint64
}

const (
	// subscriptionBuffer is larger than the default since rounds change quickly while ringing.
	subscriptionBuffer = 128
	// shutdownGrace bounds how long Run waits for the source to close after ctx is done.
	shutdownGrace = 2 * time.Second
)

// NewRecorder creates a recorder writing to repo.
func NewRecorder(ctx context.Context, repo repository.Repository) *Recorder {
	return &Recorder{
		repo: repo,
		log:  logger.FromContext(logger.WithName(ctx, "journal")),
	}
}

// Run consumes events until the source closes the subscription. Once ctx is
// done it keeps recording for up to shutdownGrace, so that the idle event the
// engine publishes while stopping still closes the open session. A
// subscription dropped for lagging is renewed and the open session, if any,
// is discarded.
func (r *Recorder) Run(ctx context.Context, source Source) error {
	for {
		sub := source.Subscribe(subscriptionBuffer)

		err := r.consume(ctx, sub)
		if !errors.Is(err, errDropped) {
			_ = sub.Close()

			return err
		}

		r.log.Warnw("Journal fell behind the event stream, session discarded")
		r.current = nil
	}
}

var errDropped = errors.New("subscription dropped")

func (r *Recorder) consume(ctx context.Context, sub *events.Subscription) error {
	for {
		select {
		case <-ctx.Done():
			return r.drain(context.WithoutCancel(ctx), sub)
		case e, ok := <-sub.C():
			if !ok {
				if sub.Dropped() {
					return errDropped
				}

				return nil
			}

			r.Handle(ctx, e)
		}
	}
}

// drain records the events still arriving after shutdown began.
func (r *Recorder) drain(ctx context.Context, sub *events.Subscription) error {
	grace := time.NewTimer(shutdownGrace)
	defer grace.Stop()

	for {
		select {
		case <-grace.C:
			if r.current != nil {
				r.log.Warnw("Source did not close in time, open session not recorded")
			}

			return nil
		case e, ok := <-sub.C():
			if !ok {
				return nil
			}

			r.Handle(ctx, e)
		}
	}
}

// Handle applies a single event. It is exported for callers that already own a subscription.
func (r *Recorder) Handle(ctx context.Context, e events.Event) {
	switch e.Kind {
	case events.KindAlarmActivated:
		if r.current != nil {
			// Already recording.
			return
		}

		r.current = &alarm.Session{StartedAt: e.At}
	case events.KindRoundChanged:
		r.countLoss(e.Round)
	case events.KindAlarmIdle:
		r.finish(ctx, e)
	case events.KindStateChanged, events.KindUnknown:
	}
}

func (r *Recorder) countLoss(round *puzzle.Snapshot) {
	if r.current == nil || round == nil {
		return
	}

	if round.Phase != puzzle.PhaseResolved || round.Outcome != puzzle.OutcomeLost {
		return
	}

	if round.Generation == r.lostGeneration {
		return
	}

	r.lostGeneration = round.Generation
	r.current.RoundsLost++
}

func (r *Recorder) finish(ctx context.Context, e events.Event) {
	session := r.current
	r.current = nil

	if session == nil {
		return
	}

	session.EndedAt = e.At
	session.EndReason = e.Reason
	session.EndedBy = e.State.LastActor.Clone()

	if e.Reason == alarm.IdleReasonWon {
		session.EndedBy = nil
	}

	if err := r.repo.Append(ctx, session); err != nil {
		r.log.Errorw("Failed to append session to journal", "error", err)

		return
	}

	r.log.Infow("Session recorded",
		"reason", session.EndReason.String(),
		"duration", session.Duration().String(),
		"rounds_lost", session.RoundsLost,
	)
}
