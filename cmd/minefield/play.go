package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/audio"
	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/core"
	"github.com/vovakirdan/minefield/internal/fixed"
	"github.com/vovakirdan/minefield/internal/platform"
	"github.com/vovakirdan/minefield/internal/platform/tui"
	"github.com/vovakirdan/minefield/internal/platform/window"
	"github.com/vovakirdan/minefield/internal/storage"
)

var (
	flagBackend string
	flagSize    string
	flagCenter  bool
	flagMute    bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play one board",
	Long: `Start a board with the configured size and backend.

Controls:
  Arrows/WASD/hjkl  - Move the cursor one cell
  Z/Space           - Reveal the cell under the cursor
  X/F               - Cycle flag -> question mark -> covered
  P                 - Pause
  R                 - Restart
  Q                 - Quit

Size presets:
  small    - 8x6
  classic  - 13x8 (fills the 240x160 screen)
  large    - 20x12

Examples:
  minefield play
  minefield play --size small
  minefield play --backend window
  minefield play --mute --fps 30`,
	Args: cobra.NoArgs,
	Run:  run(runPlay),
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Frontend: tui or window (default from config)")
	playCmd.Flags().StringVar(&flagSize, "size", "", "Grid size preset: small, classic, large")
	playCmd.Flags().BoolVar(&flagCenter, "center", true, "Keep the grid centred in the terminal")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := applyPlayFlags(cmd, &cfg); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Display.Backend == config.BackendTUI)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	store := openStore(cfg.Storage.Path, logger)
	defer closeStore(store)

	return play(cfg, store, logger)
}

// applyPlayFlags overrides cfg with the play flags the user set.
func applyPlayFlags(cmd *cobra.Command, cfg *config.Config) error {
	if flagSize != "" {
		if err := config.ApplyPreset(cfg, config.SizePreset(flagSize)); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("backend") {
		cfg.Display.Backend = flagBackend
	}
	if cmd.Flags().Changed("center") {
		cfg.Display.Center = flagCenter
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg.Validate()
}

// play runs one session on the configured backend and blocks until it ends.
func play(cfg config.Config, store *storage.Store, logger *log.Logger) error {
	sink, closeAudio := openAudio(cfg, logger)
	defer closeAudio()

	grid := fixed.P(cfg.Grid.Width, cfg.Grid.Height)
	origin := fixed.Vec{X: fixed.FromFloat(cfg.Grid.Origin.X), Y: fixed.FromFloat(cfg.Grid.Origin.Y)}
	music := cfg.Audio.Enabled && cfg.Audio.Music

	logger.Info("starting session", "backend", cfg.Display.Backend, "grid", grid, "origin", origin)
	var err error
	switch cfg.Display.Backend {
	case config.BackendWindow:
		err = window.Run(window.Session{
			Grid:     grid,
			Origin:   origin,
			Width:    cfg.Display.Width,
			Height:   cfg.Display.Height,
			Scale:    cfg.Display.Scale,
			TickRate: cfg.Display.TickRate,
			Music:    music,
			Store:    store,
			Sink:     sink,
			Logger:   logger,
		})
	default:
		err = tui.Run(tui.Session{
			Grid:     grid,
			Origin:   origin,
			Center:   cfg.Display.Center,
			TickRate: cfg.Display.TickRate,
			Music:    music,
			Frontend: platform.FrontendTUI,
			Store:    store,
			Sink:     sink,
			Logger:   logger,
		})
	}
	if err != nil {
		return fmt.Errorf("running %s session: %w", cfg.Display.Backend, err)
	}
	logger.Info("session ended", "backend", cfg.Display.Backend)
	return nil
}

// openAudio starts the speaker when sound is enabled. The returned sink is
// silent when sound is off or the device is unavailable.
func openAudio(cfg config.Config, logger *log.Logger) (core.AudioSink, func()) {
	if !cfg.Audio.Enabled {
		return core.NopSink{}, func() {}
	}
	return audio.Open(cfg.Audio.Volume, cfg.Audio.Music, logger)
}
