package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pattern/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show best runs for a level variant",
	Long: `Display the ten fewest-move completions for the specified level.

Examples:
  pattern scores flood
  pattern scores sokoban`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	name := args[0]

	def, _, ok := findDef(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'pattern levels' to see the variants.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.BestCompletions(name, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving completions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best runs - %s\n", def.Title)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No completions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pattern play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-7s  %-20s  %s\n", "Rank", "Moves", "Seed", "Date")
	fmt.Printf("  %-4s  %-7s  %-20s  %s\n", "----", "-----", "----", "----")

	for i, e := range entries {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-7d  %-20d  %s\n", i+1, e.Moves, e.Seed, dateStr)
	}

	fmt.Println()
	if best, err := store.BestMoves(name); err == nil {
		count, _ := store.CompletionCount(name)
		fmt.Printf("Best: %d moves across %d completions\n", best, count)
	}
}
