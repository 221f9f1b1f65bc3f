package power

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/oshokin/wake-gate/internal/domain/alarm"
	"github.com/oshokin/wake-gate/internal/events"
	"github.com/oshokin/wake-gate/internal/logger"
)

// ErrUnsupportedOS indicates the current OS has no known sleep inhibitor.
var ErrUnsupportedOS = errors.New("unsupported operating system")

// inhibitReason is shown by the OS when listing inhibitors.
const inhibitReason = "wake-gate alarm pending"

// Command returns the helper command that blocks sleep for as long as it runs:
// - Linux: `systemd-inhibit --what=sleep:idle ... sleep infinity`
// - macOS: `caffeinate -i -s`.
func Command(goos string) (string, []string, error) {
	osName := strings.ToLower(goos)

	switch {
	case strings.Contains(osName, "linux"):
		return "systemd-inhibit", []string{
			"--what=sleep:idle",
			"--who=wake-gate",
			"--why=" + inhibitReason,
			"--mode=block",
			"sleep", "infinity",
		}, nil
	case strings.Contains(osName, "darwin"):
		return "caffeinate", []string{"-i", "-s"}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s: %w", goos, ErrUnsupportedOS)
	}
}

// Process is a started helper.
type Process interface {
	// Wait blocks until the helper exits.
	Wait() error
}

// Starter launches the helper bound to ctx; cancelling ctx must stop it.
type Starter func(ctx context.Context) (Process, error)

// ExecStarter starts the helper for the current OS.
func ExecStarter(ctx context.Context) (Process, error) {
	name, args, err := Command(runtime.GOOS)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if err = cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", name, err)
	}

	return cmd, nil
}

// Inhibitor holds a sleep inhibitor while the alarm is armed or ringing.
type Inhibitor struct {
	// start launches the helper.
	start Starter
	// log is the component logger.
	log *zap.SugaredLogger
	// mu protects release and failed.
	mu sync.Mutex
	// release stops the running helper, nil when not holding.
	release context.CancelFunc
	// exited is closed when the running helper exits.
	exited chan struct{}
	// failed suppresses repeated start warnings until the next release.
	failed bool
}

// NewInhibitor creates an inhibitor using start, or ExecStarter when start is nil.
func NewInhibitor(ctx context.Context, start Starter) *Inhibitor {
	if start == nil {
		start = ExecStarter
	}

	return &Inhibitor{
		start: start,
		log:   logger.FromContext(logger.WithName(ctx, "power")),
	}
}

// Acquire starts holding unless already holding. Failures are logged once.
func (i *Inhibitor) Acquire() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.holdingLocked() || i.failed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())

	proc, err := i.start(ctx)
	if err != nil {
		cancel()

		i.failed = true
		i.log.Warnw("Failed to inhibit sleep, the machine may suspend before the alarm", "error", err)

		return
	}

	exited := make(chan struct{})
	go func() {
		_ = proc.Wait()

		close(exited)
	}()

	i.release = cancel
	i.exited = exited
	i.log.Debugw("Sleep inhibited")
}

// Release stops holding and waits for the helper to exit.
func (i *Inhibitor) Release() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.failed = false

	if i.release == nil {
		return
	}

	i.release()
	<-i.exited

	i.release = nil
	i.exited = nil
	i.log.Debugw("Sleep inhibitor released")
}

// Holding reports whether a helper is running.
func (i *Inhibitor) Holding() bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.holdingLocked()
}

// holdingLocked also notices a helper that died on its own.
func (i *Inhibitor) holdingLocked() bool {
	if i.release == nil {
		return false
	}

	select {
	case <-i.exited:
		i.release()
		i.release = nil
		i.exited = nil

		return false
	default:
		return true
	}
}

// Apply holds for every phase except Idle.
func (i *Inhibitor) Apply(phase alarm.Phase) {
	if phase == alarm.PhaseIdle {
		i.Release()

		return
	}

	i.Acquire()
}

// Source hands out event subscriptions.
type Source interface {
	Subscribe(buffer int) *events.Subscription
}

// Run follows the alarm phase until ctx is done or the source closes, then releases.
func (i *Inhibitor) Run(ctx context.Context, source Source) {
	defer i.Release()

	for {
		sub := source.Subscribe(0)

		dropped := i.follow(ctx, sub)
		_ = sub.Close()

		if !dropped {
			return
		}
	}
}

func (i *Inhibitor) follow(ctx context.Context, sub *events.Subscription) bool {
	for {
		select {
		case <-ctx.Done():
			return false
		case e, ok := <-sub.C():
			if !ok {
				return sub.Dropped()
			}

			if e.Kind != events.KindRoundChanged {
				i.Apply(e.State.Phase)
			}
		}
	}
}
