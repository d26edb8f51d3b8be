// tetris is a terminal Tetris with persistent high scores and SSH serving.
//
// Usage:
//
//	tetris list              - List available game modes
//	tetris play [mode]       - Play (default mode: tetris)
//	tetris menu              - Start menu to pick a mode interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom tetris.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

// cliLog reports to the terminal before and after the alternate screen is active.
var cliLog = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tetris"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		cliLog.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `Tetris for the terminal, with a 7-bag or classic uniform randomizer,
persistent high scores and an SSH server for remote play.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play tetris_classic --difficulty hard
  tetris menu
  tetris serve --ssh :2222
  tetris scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		preset, err := config.ParseDifficultyPreset(flagDifficulty)
		if err != nil {
			return err
		}
		if flagConfig != "" {
			if _, err := config.LoadTetris(flagConfig); err != nil {
				cliLog.Warn("using default config", "err", err)
			}
		}
		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(string(preset))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris YAML config")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// openGameLog opens the log file used while the TUI owns the terminal.
// The returned close func is always safe to call.
func openGameLog() (*log.Logger, func()) {
	home, err := os.UserHomeDir()
	if err != nil {
		cliLog.Warn("logging disabled", "err", err)
		return nil, func() {}
	}
	path := filepath.Join(home, ".arcade", "tetris.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		cliLog.Warn("logging disabled", "err", err)
		return nil, func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		cliLog.Warn("logging disabled", "err", err)
		return nil, func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }
}
