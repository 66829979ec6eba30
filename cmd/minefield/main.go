// minefield is a grid-based minefield puzzle for the terminal and the desktop.
//
// Usage:
//
//	minefield play           - Play one board
//	minefield menu           - Pick a grid size interactively, play, repeat
//	minefield serve          - Start SSH server for remote play
//	minefield stats          - Show recorded sessions and totals
//	minefield config         - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.minefield, ./configs, embedded)
//	--fps <rate>        - Override the tick rate
//	--db <path>         - Override the session database path
//	--log-level <lvl>   - debug, info, warn, error (default: warn)
//	--log-file <path>   - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Minefield - a handheld-style mine puzzle",
	Long: `Minefield is a grid-based mine puzzle. Move the cursor over a field of
covered cells, reveal them, and mark the ones you suspect with flags or
question marks. It runs in the terminal, in a desktop window, or over SSH.

Available commands:
  play     - Play one board
  menu     - Pick a grid size, play, and view your history
  serve    - Start SSH server for remote play
  stats    - Show recorded sessions
  config   - Print the effective configuration

Examples:
  minefield play
  minefield play --size large --backend window
  minefield menu
  minefield serve --ssh :2222
  minefield stats -i`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minefield/sessions.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}

// run adapts a command body that returns an error to cobra's Run, printing
// the error and exiting non-zero like the other commands.
func run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := fn(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadConfig loads and validates the configuration, applying global flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}
	if cmd.Flags().Changed("fps") {
		cfg.Display.TickRate = flagFPS
	}
	if cmd.Flags().Changed("db") {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, source, cfg.Validate()
}

// newLogger builds the command logger. When quiet is set and no log file was
// given, output is discarded so it cannot corrupt a full-screen terminal UI.
func newLogger(quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	case quiet:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "minefield",
		Level:           level,
	})
	return logger, closeFn, nil
}

// openStore opens the session database. Failure is logged and play continues without it.
func openStore(path string, logger *log.Logger) *storage.Store {
	store, err := storage.Open(path)
	if err != nil {
		logger.Warn("could not open session database", "path", path, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
