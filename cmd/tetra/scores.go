package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetra/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best scores stored in the scores database.

With --player, also show that player's statistics. With --clear, delete
the player's scores (or every score when no player is given).

Examples:
  tetra scores
  tetra scores --limit 20
  tetra scores --player alice
  tetra scores --player alice --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show statistics for this player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete scores instead of showing them")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(gameCfg.Records.DBPath)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	out := termenv.NewOutput(os.Stdout)
	title := func(s string) string {
		return out.String(s).Foreground(out.Color("14")).Bold().String()
	}
	dim := func(s string) string {
		return out.String(s).Foreground(out.Color("241")).String()
	}

	if flagScoresClear {
		if err := store.ClearScores(flagScoresPlayer); err != nil {
			exitf("clearing scores: %v", err)
		}
		if flagScoresPlayer == "" {
			fmt.Println("All scores cleared.")
		} else {
			fmt.Printf("Scores of %s cleared.\n", flagScoresPlayer)
		}
		return
	}

	scores, err := store.TopScores(flagScoresLimit)
	if err != nil {
		exitf("retrieving scores: %v", err)
	}

	fmt.Println(title("High Scores - Tetra"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetra play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Round", "Lines", "Date")
	fmt.Println(dim("  ----  ------------  --------  -----  -----  ----"))
	for i, e := range scores {
		rank := fmt.Sprintf("%-4d", i+1)
		if i == 0 {
			rank = out.String(rank).Foreground(out.Color("11")).Bold().String()
		}
		fmt.Printf("  %s  %-12s  %-8d  %-5d  %-5d  %s\n",
			rank, e.Player, e.Score, e.Round, e.Lines, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if flagScoresPlayer == "" {
		return
	}

	stats, err := store.PlayerStats(flagScoresPlayer)
	if err != nil {
		exitf("retrieving stats: %v", err)
	}
	fmt.Println()
	fmt.Println(title("Player - " + stats.Player))
	if stats.GamesCount == 0 {
		fmt.Println("No games recorded.")
		return
	}
	fmt.Printf("  Games:       %d\n", stats.GamesCount)
	fmt.Printf("  High score:  %d\n", stats.HighScore)
	fmt.Printf("  Best round:  %d\n", stats.BestRound)
	fmt.Printf("  Total lines: %d\n", stats.TotalLines)
	fmt.Printf("  Avg score:   %.0f\n", stats.AvgScore)
	fmt.Printf("  Last played: %s\n", stats.LastPlayed.Local().Format("2006-01-02 15:04"))
}
