package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/shield-duel/internal/config"
	"github.com/vovakirdan/shield-duel/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the duel SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a setup menu and its own
match; both players share the connecting keyboard. Preferences are stored
per SSH user in the server's database. Sessions have no sound.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.duel/host_key

Examples:
  duel serve                           # Listen on :23234 with auto-generated key
  duel serve --ssh :2222               # Listen on port 2222
  duel serve --host-key ./my_host_key  # Use specific host key
  duel serve --db ./prefs.db           # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom config YAML")
}

func runServe(_ *cobra.Command, _ []string) error {
	duelCfg, err := config.LoadDuel(flagServeConfig)
	if err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Duel:        duelCfg,
	}

	serverLog := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "duel-ssh",
	})

	server, err := tui.NewSSHServer(cfg, serverLog)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	fmt.Printf("Starting duel SSH server on %s\n", cfg.Address)
	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
