package mixer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/volume"
)

// Backend names accepted by Open.
const (
	BackendAuto    = "auto"
	BackendPulse   = "pulse"
	BackendCommand = "command"
	BackendNone    = "none"
)

var (
	// ErrUnknownBackend is returned for an unsupported backend name.
	ErrUnknownBackend = errors.New("unknown volume backend")
	// ErrUnsupportedOS indicates no volume command is known for this OS.
	ErrUnsupportedOS = errors.New("unsupported operating system")
)

// audioServers are executables that accept PulseAudio protocol clients.
var audioServers = []string{"pulseaudio", "pipewire-pulse", "pipewire"} //nolint:gochecknoglobals // Lookup table.

// Effector is a volume.Effector that holds OS resources.
type Effector interface {
	volume.Effector
	// Close releases the resources.
	Close() error
}

// Open returns the effector for backend. BackendNone yields a nil effector
// and no error: the enforcer then keeps its timers without touching the OS.
func Open(ctx context.Context, backend string) (Effector, error) {
	ctx = logger.WithName(ctx, "mixer")

	switch backend {
	case BackendNone:
		logger.Info(ctx, "Volume enforcement disabled")

		return nil, nil //nolint:nilnil // A nil effector is a valid choice.
	case BackendPulse:
		effector, err := NewPulseEffector()
		if err != nil {
			return nil, err
		}

		return effector, nil
	case BackendCommand:
		effector, err := NewCommandEffector(runtime.GOOS)
		if err != nil {
			return nil, err
		}

		return effector, nil
	case BackendAuto, "":
		return openAuto(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

func openAuto(ctx context.Context) (Effector, error) {
	if server, ok := runningAudioServer(); ok {
		effector, err := NewPulseEffector()
		if err == nil {
			logger.InfoKV(ctx, "Using pulse volume backend", "server", server)

			return effector, nil
		}

		logger.WarnKV(ctx, "Pulse server found but unreachable, falling back to commands",
			"server", server, "error", err)
	}

	effector, err := NewCommandEffector(runtime.GOOS)
	if err != nil {
		return nil, err
	}

	logger.InfoKV(ctx, "Using command volume backend", "command", effector.Name())

	return effector, nil
}

// runningAudioServer looks for a PulseAudio-compatible server process.
func runningAudioServer() (string, bool) {
	processList, err := ps.Processes()
	if err != nil {
		return "", false
	}

	for _, process := range processList {
		if slices.Contains(audioServers, process.Executable()) {
			return process.Executable(), true
		}
	}

	return "", false
}

// clampPercent bounds p to 0..100.
func clampPercent(p int) int {
	return max(0, min(100, p))
}
