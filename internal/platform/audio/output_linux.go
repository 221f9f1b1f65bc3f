//go:build linux

package audio

import (
	"fmt"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"

	"github.com/oshokin/wake-gate/internal/service/sound"
)

// pulseBackend plays through the PulseAudio protocol, which PipeWire also speaks.
type pulseBackend struct {
	// client is the server connection shared by both players.
	client *pulse.Client
}

func openBackend() (backend, error) {
	client, err := pulse.NewClient()
	if err != nil {
		return nil, fmt.Errorf("connect to pulse server: %w", err)
	}

	return &pulseBackend{client: client}, nil
}

func (b *pulseBackend) newPlayer(samples []int16) sound.Player {
	return &pulsePlayer{
		client:  b.client,
		samples: samples,
	}
}

func (b *pulseBackend) close() error {
	b.client.Close()

	return nil
}

// pulsePlayer loops one cue on its own playback stream.
type pulsePlayer struct {
	// client is the shared server connection.
	client *pulse.Client
	// samples is one loop of the cue.
	samples []int16
	// stream is the active playback, nil when silent.
	stream *pulse.PlaybackStream
}

// Play restarts the cue from its first sample at full stream volume.
func (p *pulsePlayer) Play() error {
	p.Stop()

	src := &looper{samples: p.samples}

	stream, err := p.client.NewPlayback(
		pulse.Int16Reader(func(buf []int16) (int, error) {
			return src.fill(buf), nil
		}),
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(SampleRate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackRawOption(func(c *proto.CreatePlaybackStream) {
			c.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm)}
		}),
	)
	if err != nil {
		return fmt.Errorf("create playback stream: %w", err)
	}

	stream.Start()
	p.stream = stream

	return nil
}

// Stop ends the playback stream.
func (p *pulsePlayer) Stop() {
	if p.stream == nil {
		return
	}

	p.stream.Stop()
	p.stream.Close()
	p.stream = nil
}
