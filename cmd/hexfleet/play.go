package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hexfleet/internal/core"
	"github.com/vovakirdan/hexfleet/internal/platform/tui"
	"github.com/vovakirdan/hexfleet/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <board>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Arrows/WASD     - Move the cursor
  U I O           - Swap with the left-up, up or right-up neighbor
  J K L           - Swap with the left-down, down or right-down neighbor
  H               - Hint (costs points)
  P               - Pause
  R               - Restart (after game over)
  Esc/B           - Leave a paused or finished game
  Ctrl+S          - Screenshot to ~/.hexfleet/screenshots
  Q/Ctrl+C        - Quit

Modes:
  classic  - Limited moves from the config
  endless  - No move limit; play until the hull gives out
  blitz    - 15 moves at double animation speed

Examples:
  hexfleet play classic
  hexfleet play hive --mode blitz
  hexfleet play crater --config ./my-hexfleet.yaml
  hexfleet play classic --seed 42`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{tuiAnnotation: "true"},
	Run:         runPlay,
}

// terminalConfig builds the runtime config from the terminal size and global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown board %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hexfleet list' to see available boards.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	tui.SelectMode(game, appMode)

	// Continue without storage - game still works
	store := openStore()

	_, runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
