package audio

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/wake-gate/internal/service/sound"
)

// TestSamples_Shapes checks that both cues are audible loops ending in silence.
func TestSamples_Shapes(t *testing.T) {
	t.Parallel()

	require.Nil(t, Samples(sound.CueNone))

	for _, cue := range []sound.Cue{sound.CuePrimary, sound.CueSecondary} {
		samples := Samples(cue)
		require.NotEmpty(t, samples, cue.String())

		var peak int16

		for _, s := range samples {
			peak = max(peak, s, -s)
		}

		require.Greater(t, peak, int16(10000), cue.String())
		require.Zero(t, samples[len(samples)-1], cue.String())
	}

	// Four beeps with gaps plus the pause last 1.0s.
	require.Len(t, Samples(sound.CuePrimary), samplesFor(beepCount*(beepLength+beepGap)+beepPause))
}

// TestLooper_Wraps verifies that the looper repeats the cue without gaps.
func TestLooper_Wraps(t *testing.T) {
	t.Parallel()

	l := &looper{samples: []int16{1, 2, 3}}
	buf := make([]int16, 7)

	require.Equal(t, 7, l.fill(buf))
	require.Equal(t, []int16{1, 2, 3, 1, 2, 3, 1}, buf)

	require.Equal(t, 2, l.fill(buf[:2]))
	require.Equal(t, []int16{2, 3}, buf[:2])

	empty := &looper{}
	buf = []int16{9, 9}
	require.Equal(t, 2, empty.fill(buf))
	require.Equal(t, []int16{0, 0}, buf)
}
