package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetra/internal/platform/tui"
	"github.com/vovakirdan/tui-tetra/internal/spectate"
)

var flagWatchWait time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <url>",
	Short: "Watch games hosted by tetra serve",
	Long: `Connect to a spectator stream and watch the running games.

Controls:
  Tab/Right  - Next game
  Left       - Previous game
  Q/Esc      - Quit

Examples:
  tetra watch ws://localhost:8080/watch
  tetra watch ws://arcade.example.com:8080/watch --wait 30s`,
	Args: cobra.ExactArgs(1),
	Run:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&flagWatchWait, "wait", 10*time.Second, "How long to keep retrying the connection")
}

func runWatch(_ *cobra.Command, args []string) {
	client, err := spectate.Dial(context.Background(), args[0], flagWatchWait, logger)
	if err != nil {
		exitf("connecting to %s: %v", args[0], err)
	}
	defer client.Close()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	if err := tui.Watch(client, width, height); err != nil {
		exitf("watching: %v", err)
	}
}
