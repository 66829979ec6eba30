package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a grid size picker",
	Long: `Start in interactive menu mode.

Pick a grid size and play. When you quit a board you return to the menu.
Press Tab in the menu to browse your session history.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected size
  Tab          - Session history
  Q            - Quit

Examples:
  minefield menu
  minefield menu --fps 30
  minefield menu --db ./sessions.db`,
	Args: cobra.NoArgs,
	Run:  run(runMenu),
}

func init() {
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

// presetFor returns the preset matching the grid size, or classic.
func presetFor(cfg config.Config) config.SizePreset {
	for _, p := range config.Presets {
		if w, h, _ := p.Dimensions(); w == cfg.Grid.Width && h == cfg.Grid.Height {
			return p
		}
	}
	return config.SizeClassic
}

func runMenu(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	store := openStore(cfg.Storage.Path, logger)
	defer closeStore(store)

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	preset := presetFor(cfg)
	for {
		res, err := tui.RunMenu(preset, width, height)
		if err != nil {
			return err
		}
		if res.Quit {
			return nil
		}

		if res.WantsHistory {
			goBack, err := tui.RunHistory(store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		preset = res.Preset
		if err := config.ApplyPreset(&cfg, preset); err != nil {
			return err
		}
		if err := play(cfg, store, logger); err != nil {
			logger.Error("session failed", "error", err)
		}
	}
}
