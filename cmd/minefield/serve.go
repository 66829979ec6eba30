package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minefield/internal/config"
	"github.com/vovakirdan/minefield/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the minefield SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the grid size menu.
Remote sessions are silent. Sessions are recorded in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.minefield/host_key

Examples:
  minefield serve                           # Listen on :23234 with auto-generated key
  minefield serve --ssh :2222               # Listen on port 2222
  minefield serve --host-key ./my_host_key  # Use specific host key
  minefield serve --size large              # Preselect the large grid

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  run(runServe),
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSize, "size", "", "Preselected grid size: small, classic, large")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("config loaded", "source", source)

	preset := presetFor(cfg)
	if flagSize != "" {
		preset = config.SizePreset(flagSize)
		if _, _, ok := preset.Dimensions(); !ok {
			return fmt.Errorf("%w: unknown size %q", config.ErrInvalid, flagSize)
		}
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.DBPath = cfg.Storage.Path
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Preset = preset
	srvCfg.TickRate = cfg.Display.TickRate

	server, err := tui.NewSSHServer(srvCfg, logger.WithPrefix("minefield-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting minefield SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
