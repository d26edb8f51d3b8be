package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores",
	Long: `Display the top high scores for a mode (default: tetris).

Examples:
  tetris scores
  tetris scores tetris_classic --limit 25
  tetris scores --limit 0          # every recorded run
  tetris scores --all              # summary of every mode
  tetris scores tetris --clear     # delete a mode's scores`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show a summary of every mode")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagScoresAll {
		if len(args) > 0 || flagScoresClear {
			return errors.New("--all takes no mode and cannot be combined with --clear")
		}
		return runScoresSummary(out)
	}

	gameID := tetris.IDBag
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see available modes", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		cliLog.Info("scores cleared", "mode", gameID)
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit <= 0 {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, flagScoresLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n", game.Title())
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'tetris play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %s\n", "Rank", "Score", "Level", "Lines", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-5s  %-5s  %s\n", "----", "-----", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-5d  %-5d  %s\n", i+1, e.Score, e.Level, e.Lines, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Games: %d  Avg: %.0f  Total lines: %d  Best level: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalLines, stats.BestLevel)
	return nil
}

// runScoresSummary prints one line per registered mode from the aggregated stats.
func runScoresSummary(out io.Writer) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Fprintf(out, "  %-16s  %-6s  %-10s  %-8s  %-5s  %s\n", "Mode", "Games", "Best", "Avg", "Level", "Last played")
	fmt.Fprintf(out, "  %-16s  %-6s  %-10s  %-8s  %-5s  %s\n", "----", "-----", "----", "---", "-----", "-----------")
	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Fprintf(out, "  %-16s  %-6d  %-10s  %-8s  %-5s  %s\n", g.ID, 0, "-", "-", "-", "never")
			continue
		}
		fmt.Fprintf(out, "  %-16s  %-6d  %-10d  %-8.0f  %-5d  %s\n",
			g.ID, st.GamesCount, st.HighScore, st.AvgScore, st.BestLevel, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
