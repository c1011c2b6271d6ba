package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/replay"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagSimSeconds float64
	flagRecord     string
	flagSave       bool
	flagLookahead  float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Play a headless run with the autopilot",
	Long: `Run the simulation without a terminal, steered by the autopilot.

The run ends at game over or after --seconds of simulated time. With
--record the frames are written to a replay file that 'runner replay'
can verify.

Examples:
  runner sim
  runner sim --seed 7 --seconds 300
  runner sim --difficulty hard --record hard.rpl
  runner sim --save                 # add the run to the scoreboard`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 120, "Simulated seconds before stopping (0 = until game over)")
	simCmd.Flags().StringVar(&flagRecord, "record", "", "Write a replay file")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Record the run in the scores database")
	simCmd.Flags().Float64Var(&flagLookahead, "lookahead", runner.DefaultAutopilot().LookaheadSeconds, "Autopilot lookahead in seconds")
}

func runSim(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, preset)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	pilot := runner.DefaultAutopilot()
	pilot.LookaheadSeconds = flagLookahead

	opts := replay.SimOptions{
		Seed:    seed,
		Preset:  string(preset),
		Seconds: flagSimSeconds,
		FPS:     flagFPS,
		Pilot:   pilot,
		Session: []runner.Option{runner.WithLogger(logger)},
	}

	var (
		store *storage.Store
		best  *storage.BestStore
	)
	if flagSave {
		store = openStore(logger)
		if store != nil {
			defer store.Close()
			best = storage.NewBestStore(store, string(preset))
			opts.Session = append(opts.Session, runner.WithBestStore(best))
		}
	}

	start := time.Now()
	rec, session := replay.Simulate(cfg, opts)
	snap := *rec.Final
	logger.Debug("simulation finished", "frames", len(rec.Frames), "wall", time.Since(start))

	fmt.Printf("Seed      %d\n", seed)
	fmt.Printf("State     %s\n", snap.State)
	fmt.Printf("Time      %.1fs\n", snap.Elapsed)
	fmt.Printf("Score     %d\n", snap.Score)
	fmt.Printf("Coins     %d\n", snap.Coins)
	fmt.Printf("Lives     %d\n", snap.Lives)
	fmt.Printf("Distance  %.0f\n", snap.Travelled)
	fmt.Printf("Speed     %.1f\n", snap.Speed)

	if flagRecord != "" {
		if err := replay.SaveFile(flagRecord, rec); err != nil {
			return err
		}
		fmt.Printf("Recorded  %s (%d frames)\n", flagRecord, len(rec.Frames))
	}

	if store != nil {
		id, err := store.SaveRun(storage.Run{
			Score:    snap.Score,
			Coins:    snap.Coins,
			Distance: snap.Travelled,
			Duration: time.Duration(snap.Elapsed * float64(time.Second)),
			Preset:   string(preset),
			Seed:     session.Seed(),
		})
		if err != nil {
			return fmt.Errorf("sim: save run: %w", err)
		}
		fmt.Printf("Saved     %s (best %d for %s)\n", id, session.Best(), best.Key())
	}
	return nil
}
