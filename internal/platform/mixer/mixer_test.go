package mixer

import (
	"context"
	"os/exec"
	"testing"

	"github.com/jfreymuth/pulse/proto"
	"github.com/stretchr/testify/require"
)

// TestOpen_NamedBackends covers the backends that need no audio server.
func TestOpen_NamedBackends(t *testing.T) {
	t.Parallel()

	effector, err := Open(context.Background(), BackendNone)
	require.NoError(t, err)
	require.Nil(t, effector)

	_, err = Open(context.Background(), "alsa-direct")
	require.ErrorIs(t, err, ErrUnknownBackend)
}

// TestCommandArgs pins the command lines of each tool.
func TestCommandArgs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"-e", "set volume output volume 65 without output muted"}, osascriptArgs(65))
	require.Equal(t, []string{"set-sink-volume", "@DEFAULT_SINK@", "30%"}, pactlArgs(30))
	require.Equal(t, []string{"-q", "sset", "Master", "100%", "unmute"}, amixerArgs(100))
}

// TestNewCommandEffector_ToolSelection verifies the Linux tool preference and unsupported systems.
//
//nolint:paralleltest // Swaps the package-level lookPath.
func TestNewCommandEffector_ToolSelection(t *testing.T) {
	original := lookPath
	t.Cleanup(func() { lookPath = original })

	available := map[string]bool{"amixer": true}
	lookPath = func(file string) (string, error) {
		if available[file] {
			return "/usr/bin/" + file, nil
		}

		return "", exec.ErrNotFound
	}

	effector, err := NewCommandEffector("linux")
	require.NoError(t, err)
	require.Equal(t, "amixer", effector.Name())

	available["pactl"] = true

	effector, err = NewCommandEffector("linux")
	require.NoError(t, err)
	require.Equal(t, "pactl", effector.Name())

	clear(available)

	_, err = NewCommandEffector("linux")
	require.ErrorIs(t, err, ErrUnsupportedOS)

	effector, err = NewCommandEffector("darwin")
	require.NoError(t, err)
	require.Equal(t, "osascript", effector.Name())
	require.NoError(t, effector.Close())

	_, err = NewCommandEffector("plan9")
	require.ErrorIs(t, err, ErrUnsupportedOS)
}

// TestCommandEffector_ReportsFailures runs a tool that does not exist.
func TestCommandEffector_ReportsFailures(t *testing.T) {
	t.Parallel()

	effector := &CommandEffector{name: "wake-gate-no-such-tool", args: pactlArgs}

	err := effector.SetOutputVolume(50)
	require.ErrorIs(t, err, exec.ErrNotFound)
}

// TestChannelVolumes checks scaling, clamping and the stereo fallback.
func TestChannelVolumes(t *testing.T) {
	t.Parallel()

	require.Equal(t, proto.ChannelVolumes{uint32(proto.VolumeNorm), uint32(proto.VolumeNorm)}, channelVolumes(0, 100))
	require.Equal(t, proto.ChannelVolumes{uint32(proto.VolumeNorm)}, channelVolumes(1, 250))
	require.Equal(t, proto.ChannelVolumes{0, 0, 0}, channelVolumes(3, -10))
	require.Equal(t, uint32(proto.VolumeNorm)*30/100, channelVolumes(1, 30)[0])
}
