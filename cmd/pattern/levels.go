package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pattern/internal/engine"
	"github.com/vovakirdan/tui-pattern/internal/levels"
)

var flagSpoilers bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level variants",
	Long: `Shows the seven level variants of the campaign in play order.

Each level has a hidden movement rule the player is meant to discover.
Pass --spoilers to print the rules.`,
	Run: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagSpoilers, "spoilers", false, "Reveal the hidden rule of each level")
}

// spoilers describes each variant's hidden rule, keyed by definition name.
var spoilers = map[string]string{
	"paint":   "stepping off a colored cell paints the gray marker you land on",
	"flood":   "every cell you land on toggles between cyan and orange; make the board uniform",
	"trail":   "pick a color up from a source, paint it onto every dark cell you cross",
	"slide":   "each step also shoves every block until it hits something; park them on their pads",
	"mirror":  "a second cursor mirrors your moves; get both onto their goals at once",
	"lights":  "landing on a cell flips it and its neighbors; light the whole board",
	"sokoban": "push the blocks onto the matching pads; pushes into anything solid do nothing",
}

func runLevels(cmd *cobra.Command, args []string) {
	defs := levels.All()

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, d := range defs {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	// Print header
	fmt.Printf("  %-2s  %-*s  %-7s  %s\n", "#", maxNameLen, "Name", "Board", "Title")
	fmt.Printf("  %-2s  %-*s  %-7s  %s\n", "--", maxNameLen, "----", "-----", "-----")

	for i, d := range defs {
		fmt.Printf("  %-2d  %-*s  %-7s  %s\n",
			i+1, maxNameLen, d.Name, fmt.Sprintf("%dx%d", d.Width, d.Height), d.Title)
		if flagSpoilers {
			fmt.Printf("  %-2s  %-*s  %-7s  %s\n", "", maxNameLen, "", "", spoilers[d.Name])
		}
	}

	fmt.Println()
	if !flagSpoilers {
		fmt.Println("Each level hides its rule; 'pattern levels --spoilers' reveals them.")
	}
	fmt.Println("Run 'pattern play' to start the campaign.")
}

// findDef resolves a variant name to its campaign definition and 1-based
// level number.
func findDef(name string) (engine.Definition, int, bool) {
	for i, d := range levels.All() {
		if d.Name == name {
			return d, i + 1, true
		}
	}
	return engine.Definition{}, 0, false
}
