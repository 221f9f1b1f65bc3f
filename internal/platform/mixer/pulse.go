package mixer

import (
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

// defaultSink addresses whatever sink the server currently uses by default.
const defaultSink = "@DEFAULT_SINK@"

// PulseEffector sets the default sink volume over the PulseAudio protocol.
type PulseEffector struct {
	// client is the server connection.
	client *pulse.Client
}

// NewPulseEffector connects to the pulse server.
func NewPulseEffector() (*PulseEffector, error) {
	client, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("connect to pulse server: %w", err)
	}

	return &PulseEffector{client: client}, nil
}

// SetOutputVolume sets every channel of the default sink and unmutes it.
func (e *PulseEffector) SetOutputVolume(percent int) error {
	var info proto.GetSinkInfoReply

	err := e.client.RawRequest(&proto.GetSinkInfo{
		SinkIndex: proto.Undefined,
		SinkName:  defaultSink,
	}, &info)
	if err != nil {
		return fmt.Errorf("get default sink: %w", err)
	}

	err = e.client.RawRequest(&proto.SetSinkVolume{
		SinkIndex:      info.SinkIndex,
		ChannelVolumes: channelVolumes(len(info.ChannelVolumes), percent),
	}, nil)
	if err != nil {
		return fmt.Errorf("set sink volume: %w", err)
	}

	err = e.client.RawRequest(&proto.SetSinkMute{
		SinkIndex: info.SinkIndex,
		Mute:      false,
	}, nil)
	if err != nil {
		return fmt.Errorf("unmute sink: %w", err)
	}

	return nil
}

// Name identifies the backend in logs.
func (*PulseEffector) Name() string {
	return "pulse"
}

// Close disconnects from the server.
func (e *PulseEffector) Close() error {
	e.client.Close()

	return nil
}

// channelVolumes builds a volume vector of n channels at percent of the
// nominal volume. A sink reporting no channels is treated as stereo.
func channelVolumes(n, percent int) proto.ChannelVolumes {
	if n <= 0 {
		n = 2
	}

	level := uint32(proto.VolumeNorm) * uint32(clampPercent(percent)) / 100 //nolint:gosec // Bounded.

	volumes := make(proto.ChannelVolumes, n)
	for i := range volumes {
		volumes[i] = level
	}

	return volumes
}
