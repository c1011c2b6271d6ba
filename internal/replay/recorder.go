package replay

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// Recorder sits between a session and its frame and input sources and keeps
// a copy of everything that passes through.
type Recorder struct {
	frames  runner.FrameSource
	input   runner.InputSource
	rec     Recording
	pending []runner.Intent
}

// NewRecorder wraps frames and input. input may be nil for autopilot runs
// that call HandleIntent directly; use Intent to log those.
func NewRecorder(frames runner.FrameSource, input runner.InputSource, cfg config.RunnerConfig, seed int64, preset string) *Recorder {
	return &Recorder{
		frames: frames,
		input:  input,
		rec: Recording{
			Version: Version,
			Seed:    seed,
			Preset:  preset,
			Config:  cfg,
		},
	}
}

// OnFrame implements runner.FrameSource.
func (r *Recorder) OnFrame(fn func(dt float64)) func() {
	return r.frames.OnFrame(func(dt float64) {
		r.rec.Frames = append(r.rec.Frames, Frame{Intents: r.pending, DT: dt})
		r.pending = nil
		fn(dt)
	})
}

// OnIntent implements runner.InputSource.
func (r *Recorder) OnIntent(fn func(runner.Intent)) func() {
	if r.input == nil {
		return func() {}
	}
	return r.input.OnIntent(func(in runner.Intent) {
		r.Intent(in)
		fn(in)
	})
}

// Intent logs an intent delivered outside the wrapped input source.
func (r *Recorder) Intent(in runner.Intent) {
	r.pending = append(r.pending, in)
}

// Finish stores the final snapshot and returns the recording.
func (r *Recorder) Finish(final runner.Snapshot) *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	rec.Final = &final
	return &rec
}

var (
	_ runner.FrameSource = (*Recorder)(nil)
	_ runner.InputSource = (*Recorder)(nil)
)
