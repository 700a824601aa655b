// blocks is a terminal block puzzle: place polyomino pieces on an 8x8
// board, clear rows and columns, chain combos.
//
// Usage:
//
//	blocks play              - Play in the current terminal
//	blocks serve             - Start SSH server for remote play
//	blocks scores            - Show high scores
//	blocks list              - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blocks/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/nkarpov/tui-blocks/internal/games/blocks"
)

var (
	// Global flags
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
	Use:   "blocks",
	Short: "Block Puzzle - tile placement in your terminal",
	Long: `Block Puzzle is a terminal game: drop polyomino-shaped blocks onto
an 8x8 board, fill rows and columns to clear them, and chain clears
for combo multipliers.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - List registered games

Examples:
  blocks play
  blocks play --difficulty hard
  blocks serve --ssh :2222
  blocks scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blocks/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(listCmd)
}
