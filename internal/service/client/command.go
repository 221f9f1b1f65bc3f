package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/oshokin/wake-gate/internal/config"
	"github.com/oshokin/wake-gate/internal/logger"
	pb "github.com/oshokin/wake-gate/internal/pb/v1"
	"github.com/oshokin/wake-gate/internal/service/common"
)

// Action selects what Run does.
type Action int

const (
	// ActionState prints the current state.
	ActionState Action = iota
	// ActionSchedule arms the alarm for Options.Time.
	ActionSchedule
	// ActionCancel clears the alarm.
	ActionCancel
	// ActionSnooze snoozes a ringing alarm.
	ActionSnooze
	// ActionTap taps tile number Options.TileNumber.
	ActionTap
	// ActionWatch follows the event stream.
	ActionWatch
	// ActionHistory prints the wake journal.
	ActionHistory
)

// Options configures a single CLI action.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string
	// ServerAddress overrides server address from config when specified.
	ServerAddress string
	// Action is the operation to perform.
	Action Action
	// Time is the HH:MM wake time for ActionSchedule.
	Time string
	// TileNumber is the 1-based grid position for ActionTap.
	TileNumber int
	// Limit caps the number of sessions for ActionHistory.
	Limit int
	// Out receives rendered output, os.Stdout when nil.
	Out io.Writer
}

var (
	// ErrInvalidTime is returned when the wake time is not HH:MM.
	ErrInvalidTime = errors.New("wake time must be HH:MM")
	// ErrNoRound is returned when tapping while no round is interactive.
	ErrNoRound = errors.New("no puzzle round in progress")
	// ErrTileOutOfRange is returned when the tile number is outside the grid.
	ErrTileOutOfRange = errors.New("tile number is out of range")
)

// Run connects to the server and performs the selected action.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "wake-gate")

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	logger.DebugKV(ctx, "Connected", "server_address", serverAddress, "action", opts.Action)

	return perform(ctx, client, actor, opts, out)
}

// Caller is the part of common.Client the actions use.
type Caller interface {
	Schedule(ctx context.Context, actor *pb.SystemActor, hour, minute int) (*pb.AlarmState, error)
	Cancel(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmState, error)
	SnoozeNow(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmState, error)
	Tap(ctx context.Context, actor *pb.SystemActor, tileID string) (*pb.AlarmState, error)
	GetState(ctx context.Context, actor *pb.SystemActor) (*pb.AlarmState, error)
	ListSessions(ctx context.Context, limit int) (*pb.SessionJournal, error)
	WatchEvents(ctx context.Context, actor *pb.SystemActor, handle func(*pb.Event)) error
}

//nolint:cyclop // One branch per action.
func perform(ctx context.Context, client Caller, actor *pb.SystemActor, opts *Options, out io.Writer) error {
	var (
		state *pb.AlarmState
		err   error
	)

	switch opts.Action {
	case ActionSchedule:
		hour, minute, parseErr := ParseClock(opts.Time)
		if parseErr != nil {
			return parseErr
		}

		state, err = client.Schedule(ctx, actor, hour, minute)
	case ActionCancel:
		state, err = client.Cancel(ctx, actor)
	case ActionSnooze:
		state, err = client.SnoozeNow(ctx, actor)
	case ActionTap:
		state, err = tap(ctx, client, actor, opts.TileNumber)
	case ActionWatch:
		return watch(ctx, client, actor, out)
	case ActionHistory:
		journal, listErr := client.ListSessions(ctx, opts.Limit)
		if listErr != nil {
			return listErr
		}

		_, err = fmt.Fprintln(out, RenderSessions(journal))

		return err
	case ActionState:
		state, err = client.GetState(ctx, actor)
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, RenderState(state))

	return err
}

// tap resolves a grid number to the tile identity of the current round.
func tap(ctx context.Context, client Caller, actor *pb.SystemActor, number int) (*pb.AlarmState, error) {
	current, err := client.GetState(ctx, actor)
	if err != nil {
		return nil, err
	}

	round := current.GetRound()
	if round == nil {
		return nil, ErrNoRound
	}

	if number < 1 || number > len(round.GetTiles()) {
		return nil, fmt.Errorf("%w: %d not in 1-%d", ErrTileOutOfRange, number, len(round.GetTiles()))
	}

	return client.Tap(ctx, actor, round.GetTiles()[number-1].GetId())
}

func watch(ctx context.Context, client Caller, actor *pb.SystemActor, out io.Writer) error {
	current, err := client.GetState(ctx, actor)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(out, RenderState(current)); err != nil {
		return err
	}

	return client.WatchEvents(ctx, actor, func(event *pb.Event) {
		_, _ = fmt.Fprintln(out, RenderEvent(event))
	})
}

// ParseClock parses HH:MM (or H:MM) into hour and minute without range checks
// beyond the format; the server validates the range.
func ParseClock(value string) (int, int, error) {
	hourText, minuteText, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok || hourText == "" || len(minuteText) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	hour, err := strconv.Atoi(hourText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	minute, err := strconv.Atoi(minuteText)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	return hour, minute, nil
}
