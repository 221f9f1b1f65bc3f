//go:build !linux

package audio

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/oshokin/wake-gate/internal/service/sound"
)

// otoBackend plays through the platform audio API wrapped by oto.
type otoBackend struct {
	// ctx is the process-wide oto context.
	ctx *oto.Context
}

func openBackend() (backend, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("create oto context: %w", err)
	}

	<-ready

	return &otoBackend{ctx: ctx}, nil
}

func (b *otoBackend) newPlayer(samples []int16) sound.Player {
	return &otoPlayer{
		ctx:     b.ctx,
		samples: samples,
	}
}

func (b *otoBackend) close() error {
	return b.ctx.Suspend()
}

// otoPlayer loops one cue on its own oto player.
type otoPlayer struct {
	// ctx is the shared oto context.
	ctx *oto.Context
	// samples is one loop of the cue.
	samples []int16
	// player is the active player, nil when silent.
	player *oto.Player
}

// Play restarts the cue from its first sample.
func (p *otoPlayer) Play() error {
	p.Stop()

	if err := p.ctx.Resume(); err != nil {
		return fmt.Errorf("resume oto context: %w", err)
	}

	p.player = p.ctx.NewPlayer(&byteLooper{src: looper{samples: p.samples}})
	p.player.Play()

	return nil
}

// Stop pauses the player and drops it.
func (p *otoPlayer) Stop() {
	if p.player == nil {
		return
	}

	p.player.Pause()
	p.player = nil
}

// byteLooper adapts a looper to the little-endian byte stream oto reads.
type byteLooper struct {
	// src yields samples.
	src looper
	// buf is reused between reads.
	buf []int16
}

// Read fills b with whole samples; it never returns io.EOF.
func (r *byteLooper) Read(b []byte) (int, error) {
	n := len(b) / 2
	if cap(r.buf) < n {
		r.buf = make([]int16, n)
	}

	r.buf = r.buf[:n]
	r.src.fill(r.buf)

	for i, s := range r.buf {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(s)) //nolint:gosec // Two's complement reinterpretation.
	}

	return 2 * n, nil
}
