package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/core"
	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive main menu",
	Long: `Open the main menu: play, view your last games, read the rules.

Controls:
  Up/Down, k/j  - Move the highlight
  Enter         - Select
  Esc/q         - Back (quits from the main menu)

Examples:
  tetra menu
  tetra menu --preset easy`,
	Run: runMenu,
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Skip the main menu and start playing.

Controls:
  Left/Right, a/d  - Move
  Up, w/x          - Rotate
  Down, s/Space    - Soft drop
  P                - Pause
  Esc              - Return to the menu
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a screenshot to ~/.tetra/screenshots

Examples:
  tetra play
  tetra play --seed 42
  tetra play --preset hard --config ./my-tetra.yaml`,
	Run: runPlay,
}

func runMenu(_ *cobra.Command, _ []string) {
	runLocal(false)
}

func runPlay(_ *cobra.Command, _ []string) {
	runLocal(true)
}

func runLocal(startInGame bool) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store := openStore()

	runErr := tui.Run(tui.Options{
		Rules:         rules,
		Book:          newBook(store),
		Logger:        logger,
		ScreenshotDir: screenshotDir(),
		StartInGame:   startInGame,
	}, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		exitf("running game: %v", runErr)
	}
}

func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetra", "screenshots")
}
