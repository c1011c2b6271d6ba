package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/audio"
	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/runner"
)

var (
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run straight away, skipping the menu.

Controls:
  Left/A, Right/D  - Change lane
  Space/Up/W       - Jump
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Leave (when paused or after game over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - Slower start, sparse obstacles
  normal - Config as shipped
  hard   - Faster start, dense obstacles
  fixed  - No speed ramp

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42 --mute
  runner play --config ./my-runner.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound effect volume (0-1)")
}

// newSound returns the speaker sink, or a silent one when muted.
func newSound(logger *log.Logger, mute bool) runner.SoundSink {
	if mute {
		return runner.NopSound{}
	}
	logger.Debug("sound enabled", "volume", flagVolume)
	return audio.NewSpeaker(flagVolume)
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, preset)

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return tui.RunGame(tui.GameOptions{
		Config:  cfg,
		Preset:  preset,
		Runtime: runtimeConfig(),
		Store:   store,
		Sound:   newSound(logger, flagMute),
		Logger:  logger,
	})
}
