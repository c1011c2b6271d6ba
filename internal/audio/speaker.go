package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// The beep speaker is process-wide and cannot be re-initialised, so the
// device is opened at most once and outlives every Speaker.
var (
	deviceOnce sync.Once
	deviceErr  error

	initDevice = func() error {
		return speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond))
	}
	playOnDevice = func(s beep.Streamer) { speaker.Play(s) }
)

func openDevice() error {
	deviceOnce.Do(func() { deviceErr = initDevice() })
	return deviceErr
}

// Speaker is a runner.SoundSink backed by the system audio device.
// Play is a no-op until Open succeeds and after Close.
type Speaker struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	gain     float64
	opened   bool
	attached bool
}

// NewSpeaker creates a speaker sink. gain is a linear volume in [0,1].
func NewSpeaker(gain float64) *Speaker {
	return &Speaker{
		mixer: &beep.Mixer{},
		gain:  core.ClampF(gain, 0, 1),
	}
}

// Open initialises the audio device on first use and starts the mixer.
// A Speaker may be reopened after Close.
func (s *Speaker) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opened {
		return nil
	}
	if err := openDevice(); err != nil {
		return fmt.Errorf("audio: cannot initialise speaker: %w", err)
	}
	// The mixer keeps streaming silence while empty, so it is handed over once.
	if !s.attached {
		playOnDevice(s.mixer)
		s.attached = true
	}
	s.opened = true
	return nil
}

// Close stops every queued sound. The device itself stays up for the
// rest of the process.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.opened = false
	return nil
}

// Play queues snd on the mixer and returns immediately.
func (s *Speaker) Play(snd runner.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.opened {
		return
	}
	effect := Effect(snd, SampleRate, s.gain)
	if effect == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(effect)
	speaker.Unlock()
}

var (
	_ runner.SoundSink = (*Speaker)(nil)
	_ runner.Opener    = (*Speaker)(nil)
	_ runner.Closer    = (*Speaker)(nil)
)
