package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/lane-runner/internal/runner"
)

// drain streams s to the end and returns the samples.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("stream never ended")
	return nil
}

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw} {
		samples := drain(t, Tone(440, 880, 100*time.Millisecond, wave, rate))
		if len(samples) != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: expected %d samples, got %d", wave, rate.N(100*time.Millisecond), len(samples))
		}
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
				t.Fatalf("wave %d: sample %d out of range or not mono: %v", wave, i, s)
			}
		}
	}
}

func TestToneFadesOut(t *testing.T) {
	samples := drain(t, Tone(400, 400, 90*time.Millisecond, WaveSquare, 8000))
	last := samples[len(samples)-1][0]
	if last > 0.01 || last < -0.01 {
		t.Errorf("expected the tail to be near silent, got %f", last)
	}
	if first := samples[0][0]; first != 1 {
		t.Errorf("expected a full-scale start, got %f", first)
	}
}

func TestEffects(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, snd := range []runner.Sound{runner.SoundJump, runner.SoundCoin, runner.SoundHit} {
		s := Effect(snd, rate, 0.5)
		if s == nil {
			t.Fatalf("no effect for %q", snd)
		}
		samples := drain(t, s)
		if want := rate.N(EffectLength(snd)); len(samples) != want {
			t.Errorf("%q: expected %d samples, got %d", snd, want, len(samples))
		}
		for _, v := range samples {
			if v[0] > 0.5001 || v[0] < -0.5001 {
				t.Fatalf("%q: gain not applied, sample %f", snd, v[0])
			}
		}
	}

	if Effect("unknown", rate, 1) != nil {
		t.Error("expected nil for an unknown sound")
	}
}
