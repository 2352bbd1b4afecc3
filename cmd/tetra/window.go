package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. Key presses and releases are
tracked exactly, so holding a direction repeats at the configured rate.

Controls:
  Left/Right  - Move
  Up          - Rotate
  Down/Space  - Soft drop
  P           - Pause
  Esc         - Title screen
  Q           - Quit

Examples:
  tetra window
  tetra window --preset hard`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	store := openStore()

	runErr := gui.Run(gui.Options{
		Rules:  rules,
		Book:   newBook(store),
		Logger: logger,
		Seed:   flagSeed,
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		exitf("running window: %v", runErr)
	}
}
