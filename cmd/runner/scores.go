package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
	flagClear  bool
	flagRunID  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Display recorded runs. On a terminal this opens the interactive
scoreboard; when output is piped a plain table is printed instead.

Examples:
  runner scores
  runner scores --recent --limit 20 | less
  runner scores --run 01HZX3Q4M9V6T2B8C1D5E7F0GH
  runner scores --clear`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List newest runs instead of best (plain output)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to list (plain output)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history (best scores are kept)")
	scoresCmd.Flags().StringVar(&flagRunID, "run", "", "Show a single run by its id")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagRunID != "" {
		run, err := store.RunByID(flagRunID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("scores: no run %s", flagRunID)
		}
		for _, line := range tui.RunDetail(*run) {
			fmt.Println(line)
		}
		return nil
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		rt := runtimeConfig()
		return tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH)
	}
	return printScores(store)
}

// printScores writes a plain-text table for pipes and scripts.
func printScores(store *storage.Store) error {
	var (
		runs  []storage.Run
		err   error
		title = "Top runs"
	)
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
		title = "Recent runs"
	} else {
		runs, err = store.TopRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'runner play' to set the first high score!")
		return nil
	}

	header := []string{"Rank", "Score", "Coins", "Dist", "Time", "Mode", "Date"}
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %-7s  %s\n", toAny(header)...)
	for _, row := range tui.RunRows(runs) {
		fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-6s  %-7s  %s\n", toAny(row)...)
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Average: %.0f\n", stats.HighScore, stats.Runs, stats.AvgScore)
	}
	return nil
}

func toAny(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
