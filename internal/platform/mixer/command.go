package mixer

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// commandTimeout bounds a single volume command.
const commandTimeout = 2 * time.Second

// lookPath is swapped in tests.
var lookPath = exec.LookPath //nolint:gochecknoglobals // Test seam.

// CommandEffector sets the volume by running a platform tool.
type CommandEffector struct {
	// name is the executable.
	name string
	// args builds the arguments for a volume in percent.
	args func(percent int) []string
}

// NewCommandEffector picks the volume tool for goos.
func NewCommandEffector(goos string) (*CommandEffector, error) {
	switch goos {
	case "darwin":
		return &CommandEffector{name: "osascript", args: osascriptArgs}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		if _, err := lookPath("pactl"); err == nil {
			return &CommandEffector{name: "pactl", args: pactlArgs}, nil
		}

		if _, err := lookPath("amixer"); err == nil {
			return &CommandEffector{name: "amixer", args: amixerArgs}, nil
		}

		return nil, fmt.Errorf("neither pactl nor amixer found: %w", ErrUnsupportedOS)
	default:
		return nil, fmt.Errorf("%s: %w", goos, ErrUnsupportedOS)
	}
}

// SetOutputVolume runs the tool and waits for it.
func (e *CommandEffector) SetOutputVolume(percent int) error {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, e.name, e.args(clampPercent(percent))...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("run %s: %w: %s", e.name, err, strings.TrimSpace(string(out)))
	}

	return nil
}

// Name returns the executable used.
func (e *CommandEffector) Name() string {
	return e.name
}

// Close does nothing.
func (*CommandEffector) Close() error {
	return nil
}

func osascriptArgs(percent int) []string {
	return []string{"-e", "set volume output volume " + strconv.Itoa(percent) + " without output muted"}
}

func pactlArgs(percent int) []string {
	return []string{"set-sink-volume", defaultSink, strconv.Itoa(percent) + "%"}
}

func amixerArgs(percent int) []string {
	return []string{"-q", "sset", "Master", strconv.Itoa(percent) + "%", "unmute"}
}
