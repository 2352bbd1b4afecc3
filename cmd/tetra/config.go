package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the built-in configuration as YAML. Save it to
~/.tetra/configs/tetra.yaml or ./configs/tetra.yaml and edit it, or pass
it with --config.

Examples:
  tetra config > ~/.tetra/configs/tetra.yaml`,
	Args: cobra.NoArgs,
	// Printing the defaults must work even when the user's config is broken.
	PersistentPreRun: func(*cobra.Command, []string) {},
	Run: func(_ *cobra.Command, _ []string) {
		if _, err := os.Stdout.Write(config.DefaultYAML()); err != nil {
			exitf("%v", err)
		}
	},
}
