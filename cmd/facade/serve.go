package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jws412/Facade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play levels.

Each SSH connection gets its own session with a level picker menu.
Runs are journaled per server (all users share the same journal).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.facade/host_key

Examples:
  facade serve                           # Listen on :23234 with auto-generated key
  facade serve --ssh :2222               # Listen on port 2222
  facade serve --host-key ./my_host_key  # Use specific host key
  facade serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	rt := runtimeConfig()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.TickRate = rt.TickRate
	cfg.HoldTicks = rt.HoldTicks
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting facade SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
