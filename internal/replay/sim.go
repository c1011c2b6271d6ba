package replay

import (
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

// MaxSimSeconds bounds runs that ask to play until game over.
const MaxSimSeconds = 3600

// SimOptions controls a headless autopilot run.
type SimOptions struct {
	Seed    int64
	Preset  string
	Seconds float64 // stop after this much simulated time; <= 0 means MaxSimSeconds
	FPS     int
	Pilot   runner.Autopilot
	Session []runner.Option // extra options, e.g. a best store or logger
}

// Simulate plays one run with the autopilot on a manual clock and returns the
// recording together with the session it drove. The session is stopped.
func Simulate(cfg config.RunnerConfig, opts SimOptions) (*Recording, *runner.Session) {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	dt := 1.0 / float64(opts.FPS)

	clock := &runner.ManualClock{}
	rec := NewRecorder(clock, nil, cfg, opts.Seed, opts.Preset)

	sessionOpts := append([]runner.Option{}, opts.Session...)
	sessionOpts = append(sessionOpts, runner.WithSeed(opts.Seed), runner.WithFrameSource(rec))
	s := runner.NewSession(cfg, sessionOpts...)
	s.Start()
	defer s.Stop()

	// Frame count rather than summed time keeps the stop point exact.
	seconds := opts.Seconds
	if seconds <= 0 {
		seconds = MaxSimSeconds
	}
	limit := int(seconds * float64(opts.FPS))
	for i := 0; i < limit && !s.IsGameOver(); i++ {
		if in, ok := opts.Pilot.Decide(s); ok {
			rec.Intent(in)
			s.HandleIntent(in)
		}
		clock.Advance(dt)
	}
	return rec.Finish(s.Snapshot()), s
}
