// arkanoid is a terminal brick-breaking game with a powerup shop.
//
// Usage:
//
//	arkanoid play            - Play in the current terminal
//	arkanoid scores          - Show the best recorded runs
//	arkanoid serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arkanoid/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/arkanoid/internal/arkanoid"
)

var (
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick-breaking game: bounce the ball off the
paddle, clear the grid, catch falling powerups and spend earned money
in the shop mid-run.

Available commands:
  play     - Play in the current terminal
  scores   - View the best recorded runs
  serve    - Start SSH server for remote play

Examples:
  arkanoid play
  arkanoid play --config ./my-settings.yaml
  arkanoid play --seed 42
  arkanoid serve --ssh :2222
  arkanoid scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
