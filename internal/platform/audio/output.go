package audio

import (
	"context"
	"errors"
	"fmt"

	"github.com/oshokin/wake-gate/internal/logger"
	"github.com/oshokin/wake-gate/internal/service/sound"
)

// ErrNoOutput is returned when no sound output could be opened.
var ErrNoOutput = errors.New("no sound output")

// backend creates players on one output device.
type backend interface {
	newPlayer(samples []int16) sound.Player
	close() error
}

// Output holds the players of both cues on a shared device connection.
type Output struct {
	// backend is the open device connection.
	backend backend
	// primary plays the primary cue.
	primary sound.Player
	// secondary plays the secondary cue.
	secondary sound.Player
}

// Open connects to the platform sound output and prepares both cues.
func Open(ctx context.Context) (*Output, error) {
	b, err := openBackend()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoOutput, err)
	}

	logger.DebugKV(ctx, "Sound output opened", "sample_rate", SampleRate)

	return &Output{
		backend:   b,
		primary:   b.newPlayer(Samples(sound.CuePrimary)),
		secondary: b.newPlayer(Samples(sound.CueSecondary)),
	}, nil
}

// Primary returns the primary cue player.
func (o *Output) Primary() sound.Player {
	return o.primary
}

// Secondary returns the secondary cue player.
func (o *Output) Secondary() sound.Player {
	return o.secondary
}

// Close silences both cues and releases the device.
func (o *Output) Close() error {
	o.primary.Stop()
	o.secondary.Stop()

	if err := o.backend.close(); err != nil {
		return fmt.Errorf("close sound output: %w", err)
	}

	return nil
}
