package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/platform/tui"
	"github.com/vovakirdan/arkanoid/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded runs",
	Long: `Display the top 10 recorded runs: score, money earned and outcome.

With --interactive, opens a scrollable leaderboard instead of printing.

Examples:
  arkanoid scores
  arkanoid scores --interactive
  arkanoid scores --db ./runs.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a scrollable leaderboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, "arkanoid", "Arkanoid", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing leaderboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns("arkanoid", 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Arkanoid")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-7s  %s\n", "Rank", "Score", "Money", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-7s  %s\n", "----", "-----", "-----", "------", "----")
	for i, entry := range runs {
		fmt.Printf("  %-4d  %-10d  $%-7d  %-7s  %s\n",
			i+1, entry.Score, entry.Money, entry.Outcome,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats("arkanoid")
	if err == nil && stats.RunCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d   Runs: %d   Wins: %d   Total earned: $%d\n",
			stats.HighScore, stats.RunCount, stats.Wins, stats.TotalMoney)
	}
}
