// runner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	runner                   - Start menu (play, difficulty, high scores)
//	runner play              - Start a run straight away
//	runner sim               - Let the autopilot play a headless run
//	runner replay <file>     - Re-simulate a recorded run and check it
//	runner scores            - Show run history
//	runner serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.runner/runner.db)
//	--config <path>       - Load a custom runner YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Lane Runner - dodge, jump and collect coins in your terminal",
	Long: `Lane Runner is a three-lane endless runner played in the terminal.
Switch lanes to dodge obstacles, jump over them, and grab coins and hearts
while the track keeps speeding up.

Available commands:
  play     - Start a run directly
  sim      - Headless autopilot run, optionally recorded
  replay   - Verify a recorded run
  scores   - View run history
  serve    - Start SSH server for remote play

Examples:
  runner
  runner play --difficulty hard
  runner sim --seconds 120 --record run.rpl
  runner replay run.rpl
  runner serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runner/runner.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "runner",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig loads the runner config and resolves the difficulty flag.
// The preset is returned unapplied so menus can change it.
func loadConfig() (config.RunnerConfig, config.DifficultyPreset, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.RunnerConfig{}, "", err
	}
	return cfg, preset, nil
}

// runtimeConfig sizes the front-end to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. A failure is logged and play
// continues with in-memory scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	sound := newSound(logger, false)
	return tui.RunApp(tui.AppOptions{
		Config:  cfg,
		Preset:  preset,
		Runtime: runtimeConfig(),
		Store:   store,
		Sound:   sound,
		Logger:  logger,
	})
}
