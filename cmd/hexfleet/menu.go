package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hexfleet/internal/platform/tui"
	"github.com/vovakirdan/hexfleet/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Hexfleet with a board picker menu",
	Long: `Start Hexfleet in interactive menu mode.

Use arrow keys or j/k to pick a board, left/right to pick a mode and
Enter to play. Leaving a finished or paused game returns to the menu.

Controls:
  Up/Down/j/k     - Navigate boards
  Left/Right      - Cycle classic, endless, blitz
  Enter/Space     - Play
  Tab             - Scoreboard
  Q               - Quit

Examples:
  hexfleet menu
  hexfleet menu --mode endless
  hexfleet menu --fps 30 --db ./scores.db`,
	Annotations: map[string]string{tuiAnnotation: "true"},
	Run:         runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	cfg := terminalConfig()
	mode := appMode

	for {
		menuResult, err := tui.RunMenu(store, cfg, mode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size and mode across menu visits
		cfg = menuResult.Config
		mode = menuResult.Mode

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}
		tui.SelectMode(game, mode)

		// Fresh seed per game unless pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		backToMenu, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !backToMenu {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
