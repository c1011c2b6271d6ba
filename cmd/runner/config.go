package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the runner configuration",
	Long: `Print the embedded default configuration as YAML. Save it to
~/.runner/configs/runner.yaml and edit it to tune the game.

With --resolved the loaded file and the --difficulty preset are applied first.

Examples:
  runner config > ~/.runner/configs/runner.yaml
  runner config --resolved --difficulty hard`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective config after file and preset")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagResolved {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}
	config.ApplyRunnerPreset(&cfg, preset)
	data, err := config.Dump(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
