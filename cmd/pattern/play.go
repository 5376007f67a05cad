package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pattern/internal/config"
	"github.com/vovakirdan/tui-pattern/internal/engine"
	"github.com/vovakirdan/tui-pattern/internal/levels"
	"github.com/vovakirdan/tui-pattern/internal/platform/tui"
	"github.com/vovakirdan/tui-pattern/internal/storage"
)

var (
	flagConfig string
	flagLevel  int
	flagResume string
	flagSaveAs string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start the seven-level campaign.

Controls:
  Arrows/WASD  - Move
  U/Z          - Undo
  R            - Reset level
  Shift+R      - Restart with a new seed
  Tab          - Best runs
  Q/Ctrl+C     - Quit

A quit mid-campaign can be suspended into a named save slot with
--save-as and picked up later with --resume. Resuming replays the
recorded moves, so the board comes back exactly as it was left.

Examples:
  pattern play
  pattern play --seed 42
  pattern play --level 4
  pattern play --save-as evening
  pattern play --resume evening
  pattern play --config ./my-pattern.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom generator config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at the given level (1-7)")
	playCmd.Flags().StringVar(&flagResume, "resume", "", "Resume the named save slot")
	playCmd.Flags().StringVar(&flagSaveAs, "save-as", "", "Save slot to write on quit")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	defs := levels.Campaign(cfg.Params())

	// Open game storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open game database: %v\n", err)
		// Continue without storage - scores and saves are just not recorded
		store = nil
	}

	ctrl, err := buildController(store, defs)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runErr := tui.Run(ctrl, store, width, height)

	suspendGame(store, ctrl)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildController creates a fresh controller, or reconstructs one from a
// save slot when --resume is set.
func buildController(store *storage.Store, defs []engine.Definition) (*engine.Controller, error) {
	if flagResume != "" {
		if store == nil {
			return nil, fmt.Errorf("cannot resume %q without a database", flagResume)
		}
		sg, ok, err := store.LoadGame(flagResume)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("no save slot named %q", flagResume)
		}
		ctrl, err := engine.Resume(sg, defs)
		if err != nil {
			return nil, fmt.Errorf("save slot %q is unusable: %w", flagResume, err)
		}
		return ctrl, nil
	}

	ctrl := engine.NewController(flagSeed, defs)
	if flagLevel > 0 {
		if err := ctrl.StartAt(flagLevel); err != nil {
			return nil, err
		}
		return ctrl, nil
	}
	if err := ctrl.Start(); err != nil {
		return nil, err
	}
	return ctrl, nil
}

// suspendGame writes the controller back to a save slot after the UI exits.
// A finished campaign clears the slot instead.
func suspendGame(store *storage.Store, ctrl *engine.Controller) {
	slot := flagSaveAs
	if slot == "" {
		slot = flagResume
	}
	if slot == "" || store == nil {
		return
	}

	if ctrl.Complete() {
		if err := store.DeleteGame(slot); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not clear save slot %q: %v\n", slot, err)
		}
		return
	}

	sg, err := engine.Save(ctrl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not suspend game: %v\n", err)
		return
	}
	if err := store.SaveGame(slot, sg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not write save slot %q: %v\n", slot, err)
		return
	}
	fmt.Printf("Game suspended to slot %q. Resume with: pattern play --resume %s\n", slot, slot)
}
