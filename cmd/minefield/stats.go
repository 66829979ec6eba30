package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minefield/internal/platform/tui"
	"github.com/vovakirdan/minefield/internal/storage"
)

var (
	flagStatsLimit  int
	flagInteractive bool
	flagClear       bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded sessions",
	Long: `Display totals and the most recent play sessions.

Examples:
  minefield stats
  minefield stats --limit 25
  minefield stats -i        # Browse in a table
  minefield stats --clear   # Forget every session`,
	Args: cobra.NoArgs,
	Run:  run(runStats),
}

func init() {
	statsCmd.Flags().IntVarP(&flagStatsLimit, "limit", "n", 10, "Number of sessions to list")
	statsCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse sessions in a table")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded sessions")
}

func runStats(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			return err
		}
		fmt.Println("Session history cleared.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
			height = h
		}
		_, err := tui.RunHistory(store, width, height)
		return err
	}

	if flagStatsLimit <= 0 {
		return errors.New("--limit must be positive")
	}
	return printStats(store, flagStatsLimit)
}

func printStats(store *storage.Store, limit int) error {
	totals, err := store.Totals()
	if err != nil {
		return err
	}
	sessions, err := store.RecentSessions(limit)
	if err != nil {
		return err
	}

	fmt.Println("Minefield - Session History")
	fmt.Println()

	if totals.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'minefield play' to start one!")
		return nil
	}

	fmt.Printf("  Sessions:   %d\n", totals.Sessions)
	fmt.Printf("  Play time:  %s\n", totals.PlayTime.Round(time.Second))
	fmt.Printf("  Revealed:   %d\n", totals.Reveals)
	fmt.Printf("  Marks:      %d\n", totals.Marks)
	fmt.Printf("  Moves:      %d (%d at the edge)\n", totals.Moves, totals.Blocked)
	fmt.Printf("  Last:       %s\n", totals.LastPlayed.Format("2006-01-02 15:04"))
	fmt.Println()

	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-5s  %-5s  %s\n", "Date", "Grid", "Time", "Revealed", "Marks", "Moves", "Via")
	fmt.Printf("  %-16s  %-6s  %-8s  %-8s  %-5s  %-5s  %s\n", "----", "----", "----", "--------", "-----", "-----", "---")
	for _, s := range sessions {
		fmt.Printf("  %-16s  %-6s  %-8s  %-8d  %-5d  %-5d  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%dx%d", s.Width, s.Height),
			s.Duration.Round(time.Second),
			s.Reveals, s.Marks, s.Moves, s.Frontend)
	}
	return nil
}
