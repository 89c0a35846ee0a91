package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished sessions",
	Long: `Display recorded sessions: how they ended, pieces locked and duration.

Examples:
  tetris history
  tetris history --plain --limit 20
  tetris history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as plain text instead of the interactive table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening history database: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			store.Close()
			fatal("clearing history: %v", err)
		}
		fmt.Println("History cleared.")
		return
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fatal("%v", err)
		}
		return
	}

	sessions, err := store.RecentSessions(flagLimit)
	if err != nil {
		store.Close()
		fatal("retrieving sessions: %v", err)
	}

	fmt.Println("Session History")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris play' to record the first one!")
		return
	}

	header := []string{"#", "Outcome", "Pieces", "Board", "Time", "Date"}
	fmt.Printf("  %-5s  %-12s  %-6s  %-7s  %-9s  %s\n", toAny(header)...)
	fmt.Printf("  %-5s  %-12s  %-6s  %-7s  %-9s  %s\n", toAny(dashes(header))...)
	for _, s := range sessions {
		fmt.Printf("  %-5s  %-12s  %-6s  %-7s  %-9s  %s\n", toAny(tui.SessionRow(s))...)
	}

	fmt.Println()
	if stats, err := store.Stats(); err == nil {
		fmt.Println(tui.FormatStats(stats))
	}
}

func dashes(cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = strings.Repeat("-", len(c))
	}
	return out
}

func toAny(cols []string) []any {
	out := make([]any, len(cols))
	for i, c := range cols {
		out[i] = c
	}
	return out
}
