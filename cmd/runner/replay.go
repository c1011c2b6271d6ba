package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded run and check the result",
	Long: `Load a replay written by 'runner sim --record', play its frames on a
fresh session and compare the outcome with the recorded one.

A mismatch means the simulation is no longer deterministic for that
recording, or the file was edited.

Examples:
  runner replay run.rpl`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	rec, err := replay.LoadFile(args[0])
	if err != nil {
		return err
	}

	preset := rec.Preset
	if preset == "" {
		preset = "custom"
	}
	fmt.Printf("Replay    %s\n", args[0])
	fmt.Printf("Seed      %d\n", rec.Seed)
	fmt.Printf("Preset    %s\n", preset)
	fmt.Printf("Frames    %d (%.1fs)\n", len(rec.Frames), rec.Duration())
	if rec.Final != nil {
		fmt.Printf("Score     %d\n", rec.Final.Score)
	}

	if err := replay.Verify(rec); err != nil {
		return err
	}
	fmt.Println("Result    OK, replay matches the recording")
	return nil
}
