// pattern is a deterministic grid-puzzle game for the terminal.
//
// Usage:
//
//	pattern levels           - List the level variants
//	pattern play             - Play the campaign
//	pattern solve <level>    - Print a solution for a generated level
//	pattern serve            - Start SSH server for remote play
//	pattern scores <level>   - Show best runs for a level variant
//	pattern saves            - Manage suspended games
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.pattern/pattern.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "pattern",
	Short: "Pattern Master - deterministic grid puzzles in your terminal",
	Long: `Pattern Master is a terminal puzzle game. A campaign of seven level
variants, each generated from a seed, each guaranteed solvable. The same
seed always produces the same campaign.

Available commands:
  levels   - Show the level variants
  play     - Play the campaign
  solve    - Print a solution for a generated level
  serve    - Start SSH server for remote play
  scores   - View best runs
  saves    - Manage suspended games

Examples:
  pattern play
  pattern play --seed 42
  pattern solve mirror --seed 42
  pattern serve --ssh :2222
  pattern scores flood`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pattern/pattern.db", "Path to game database")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(savesCmd)
}
