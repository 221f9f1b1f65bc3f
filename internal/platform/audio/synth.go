package audio

import (
	"math"
	"time"

	"github.com/oshokin/wake-gate/internal/service/sound"
)

// SampleRate is the rate of every synthesized cue, mono signed 16-bit.
const SampleRate = 44100

// Wristwatch beeping: four short high beeps, then a pause.
const (
	beepFrequency = 4096.0
	beepLength    = 60 * time.Millisecond
	beepGap       = 60 * time.Millisecond
	beepCount     = 4
	beepPause     = 520 * time.Millisecond
	beepVolume    = 0.45
)

// Electric bell: fast clapper strikes on a bell with an inharmonic partial.
const (
	bellFundamental = 880.0
	bellPartial     = 2.76
	bellStrike      = 70 * time.Millisecond
	bellStrikes     = 24
	bellPause       = 600 * time.Millisecond
	bellDecay       = 18.0
	bellVolume      = 0.5
)

// Samples returns one loop of the cue, or nil for sound.CueNone.
func Samples(cue sound.Cue) []int16 {
	switch cue {
	case sound.CuePrimary:
		return wristwatch()
	case sound.CueSecondary:
		return bell()
	case sound.CueNone:
		return nil
	default:
		return nil
	}
}

func wristwatch() []int16 {
	beep := samplesFor(beepLength)
	gap := samplesFor(beepGap)
	out := make([]int16, 0, beepCount*(beep+gap)+samplesFor(beepPause))

	for range beepCount {
		for i := range beep {
			t := float64(i) / SampleRate
			// Square-ish tone like a piezo buzzer, with a short fade to avoid clicks.
			v := math.Copysign(1, math.Sin(2*math.Pi*beepFrequency*t)) * fade(i, beep)
			out = append(out, toPCM(v*beepVolume))
		}

		out = append(out, make([]int16, gap)...)
	}

	return append(out, make([]int16, samplesFor(beepPause))...)
}

func bell() []int16 {
	strike := samplesFor(bellStrike)
	out := make([]int16, 0, bellStrikes*strike+samplesFor(bellPause))

	for range bellStrikes {
		for i := range strike {
			t := float64(i) / SampleRate
			envelope := math.Exp(-t * bellDecay)
			v := 0.7*math.Sin(2*math.Pi*bellFundamental*t) +
				0.3*math.Sin(2*math.Pi*bellFundamental*bellPartial*t)
			out = append(out, toPCM(v*envelope*fade(i, strike)*bellVolume))
		}
	}

	return append(out, make([]int16, samplesFor(bellPause))...)
}

func samplesFor(d time.Duration) int {
	return int(math.Round(d.Seconds() * SampleRate))
}

// fade ramps the first and last 2ms of a segment of n samples.
func fade(i, n int) float64 {
	edge := samplesFor(2 * time.Millisecond)

	switch {
	case i < edge:
		return float64(i) / float64(edge)
	case n-i < edge:
		return float64(n-i) / float64(edge)
	default:
		return 1
	}
}

func toPCM(v float64) int16 {
	v = max(-1, min(1, v))

	return int16(v * math.MaxInt16)
}

// looper yields the samples of a cue endlessly.
type looper struct {
	// samples is one loop of the cue.
	samples []int16
	// pos is the next sample to emit.
	pos int
}

// fill writes len(buf) samples, wrapping around at the end of the loop.
func (l *looper) fill(buf []int16) int {
	if len(l.samples) == 0 {
		clear(buf)

		return len(buf)
	}

	for i := range buf {
		buf[i] = l.samples[l.pos]
		l.pos = (l.pos + 1) % len(l.samples)
	}

	return len(buf)
}
