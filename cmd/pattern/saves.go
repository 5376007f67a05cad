package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pattern/internal/storage"
)

var flagDeleteSave string

var savesCmd = &cobra.Command{
	Use:   "saves",
	Short: "Manage suspended games",
	Long: `List the save slots written by 'pattern play --save-as', or delete one.

Examples:
  pattern saves
  pattern saves --delete evening`,
	Run: runSaves,
}

func init() {
	savesCmd.Flags().StringVar(&flagDeleteSave, "delete", "", "Delete the named save slot")
}

func runSaves(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening game database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDeleteSave != "" {
		if err := store.DeleteGame(flagDeleteSave); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting save slot: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted save slot %q.\n", flagDeleteSave)
		return
	}

	saves, err := store.ListGames()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing save slots: %v\n", err)
		os.Exit(1)
	}

	if len(saves) == 0 {
		fmt.Println("No suspended games.")
		fmt.Println()
		fmt.Println("Quit a run with 'pattern play --save-as <name>' to create one.")
		return
	}

	maxNameLen := 4 // "Name" header
	for _, s := range saves {
		if len(s.Name) > maxNameLen {
			maxNameLen = len(s.Name)
		}
	}

	fmt.Println("Suspended games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-20s  %-4s  %s\n", maxNameLen, "Name", "Level", "Seed", "Ops", "Updated")
	fmt.Printf("  %-*s  %-5s  %-20s  %-4s  %s\n", maxNameLen, "----", "-----", "----", "---", "-------")
	for _, s := range saves {
		fmt.Printf("  %-*s  %-5d  %-20d  %-4d  %s\n",
			maxNameLen, s.Name, s.Level, s.Seed, len(s.Ops), s.UpdatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Resume with 'pattern play --resume <name>'.")
}
