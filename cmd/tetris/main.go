// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play a session
//	tetris pieces            - Show the piece catalog with all rotations
//	tetris history           - Show finished sessions
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible piece sequence
//	--db <path>          - Set database path (default: ~/.tetris/history.db)
//	--config <path>      - Path to a custom tetris.yaml
//	--catalog <path>     - Piece catalog file (legacy figures.txt or YAML)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagCatalog  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle in your terminal",
	Long: `Guide falling pieces into a well until the board fills up.

Available commands:
  play     - Play a session
  pieces   - Show the piece catalog
  history  - View finished sessions

Examples:
  tetris play
  tetris play --speed fast
  tetris play --catalog ./figures.txt --seed 42
  tetris pieces
  tetris history --plain`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/history.db", "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagCatalog, "catalog", "", "Piece catalog file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(historyCmd)
}

// newLogger builds the process logger. Unknown levels fall back to warn.
func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", level)
		lvl = log.WarnLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// fatal prints the error and exits with status 1.
func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
