package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nlopatin/hackergrid/internal/core"
	"github.com/nlopatin/hackergrid/internal/games/hacker"
	"github.com/nlopatin/hackergrid/internal/platform/tui"
	"github.com/nlopatin/hackergrid/internal/registry"
	"github.com/nlopatin/hackergrid/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game variant",
	Long: `Start playing the specified variant.

Controls:
  Left/A/H    - Rotate turret left
  Right/D/L   - Rotate turret right
  C/Space     - Fire a collect shot
  X/Enter     - Fire a destroy shot
  P/Esc       - Pause
  R           - Restart (after game over)
  Ctrl+S      - Suspend the run to disk
  Ctrl+O      - Resume a suspended run
  Q/Ctrl+C    - Quit

Examples:
  hackergrid play hacker
  hackergrid play hacker_advanced
  hackergrid play hacker --config ./my-hacker.yaml
  hackergrid play hacker --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'hackergrid list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before creation
	hacker.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
