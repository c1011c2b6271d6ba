// Package audio plays the runner's sound effects through gopxl/beep.
// All effects are synthesised; there are no sample files.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/lane-runner/internal/runner"
)

// SampleRate is the output rate of every effect.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// sweep is an oscillator whose frequency glides linearly from `from` to `to`
// over its length, with a linear fade-out over the last `release` samples.
type sweep struct {
	from, to float64
	wave     Wave
	rate     beep.SampleRate
	total    int
	release  int
	pos      int
	phase    float64
}

// Tone returns a streamer of length d that glides from one frequency to another.
func Tone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &sweep{
		from:    from,
		to:      to,
		wave:    wave,
		rate:    rate,
		total:   total,
		release: total / 3,
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var v float64
		switch s.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			v = 1
			if s.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (s.phase - 0.5)
		}

		if left := s.total - s.pos; s.release > 0 && left < s.release {
			v *= float64(left) / float64(s.release)
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*t
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// withVolume scales s by a linear gain. Zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Effect returns a fresh streamer for snd, or nil for an unknown sound.
func Effect(snd runner.Sound, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch snd {
	case runner.SoundJump:
		s = Tone(330, 660, 120*time.Millisecond, WaveSquare, rate)
	case runner.SoundCoin:
		s = beep.Seq(
			Tone(988, 988, 60*time.Millisecond, WaveSine, rate),
			Tone(1319, 1319, 140*time.Millisecond, WaveSine, rate),
		)
	case runner.SoundHit:
		s = Tone(220, 55, 250*time.Millisecond, WaveSaw, rate)
	default:
		return nil
	}
	return withVolume(s, gain)
}

// EffectLength returns the duration of snd's effect.
func EffectLength(snd runner.Sound) time.Duration {
	switch snd {
	case runner.SoundJump:
		return 120 * time.Millisecond
	case runner.SoundCoin:
		return 200 * time.Millisecond
	case runner.SoundHit:
		return 250 * time.Millisecond
	default:
		return 0
	}
}
