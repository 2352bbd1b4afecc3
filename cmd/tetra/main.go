// tetra is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetra                   - Start the main menu
//	tetra play              - Start a game right away
//	tetra window            - Play in a desktop window
//	tetra serve             - Host games over SSH
//	tetra watch <url>       - Watch games hosted by tetra serve
//	tetra scores            - Show high scores
//	tetra config            - Print the default config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tetra/scores.db)
//	--config <path>     - Use a custom config file
//	--preset <name>     - Difficulty preset: easy, normal, hard
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/config"
	"github.com/vovakirdan/tui-tetra/internal/games/tetra/engine"
	"github.com/vovakirdan/tui-tetra/internal/records"
	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
)

// Loaded by the root command before any subcommand runs.
var (
	gameCfg config.GameConfig
	rules   engine.Rules
	logger  *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetra",
	Short: "Tetra - a falling-block puzzle for your terminal",
	Long: `Tetra is a falling-block puzzle game. Steer the falling pieces,
fill whole rows to clear them, and survive as the rounds speed up.

Available commands:
  menu     - Interactive main menu (default)
  play     - Start a game directly
  window   - Play in a desktop window
  serve    - Host games over SSH
  watch    - Watch games hosted by another player
  scores   - View high scores
  config   - Print the default config

Examples:
  tetra
  tetra play --preset hard
  tetra play --seed 42
  tetra serve --ssh :2222 --http :8080
  tetra watch ws://localhost:8080/watch`,
	PersistentPreRun: setup,
	Run:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// exitf reports a fatal error and exits.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// setup loads the config and builds the logger shared by every command.
func setup(cmd *cobra.Command, _ []string) {
	if err := config.LoadDotEnv(); err != nil {
		exitf("reading .env: %v", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		exitf("%v", err)
	}
	env, err := config.ApplyEnv(&cfg)
	if err != nil {
		exitf("%v", err)
	}

	logger, err = newLogger(flagLogLevel, env.LogFormat)
	if err != nil {
		exitf("%v", err)
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagPreset)); err != nil {
			exitf("%v", err)
		}
	}
	if cmd.Flags().Changed("db") {
		cfg.Records.Enabled = true
		cfg.Records.DBPath = flagDBPath
	}

	r, err := cfg.Rules()
	if err != nil {
		exitf("%v", err)
	}
	gameCfg, rules = cfg, r

	logger.Debug("config loaded",
		"grid", fmt.Sprintf("%dx%d", r.Width, r.Height),
		"preset", cfg.Difficulty.Preset,
		"records", cfg.Records.Enabled)
}

func newLogger(level, format string) (*log.Logger, error) {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetra",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	l.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "", "text":
	case "json":
		l.SetFormatter(log.JSONFormatter)
	case "logfmt":
		l.SetFormatter(log.LogfmtFormatter)
	default:
		return nil, fmt.Errorf("TETRA_LOG_FORMAT: unknown format %q", format)
	}
	return l, nil
}

// openStore opens the scores database when records are enabled. A database
// that cannot be opened is logged and the game runs without it.
func openStore() *storage.Store {
	if !gameCfg.Records.Enabled {
		return nil
	}
	store, err := storage.Open(gameCfg.Records.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", gameCfg.Records.DBPath, "error", err)
		return nil
	}
	return store
}

// localPlayer names the local player in the scores table.
func localPlayer() string {
	for _, k := range []string{"USER", "USERNAME"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return "player"
}

// newBook builds the local record book, backed by store when it is open.
func newBook(store *storage.Store) *records.Book {
	var opts []records.Option
	if store != nil {
		opts = append(opts, records.WithStore(store))
	}
	book, err := records.NewBook(localPlayer(), opts...)
	if err != nil {
		logger.Warn("could not load records", "error", err)
		book, _ = records.NewBook(localPlayer())
	}
	return book
}
