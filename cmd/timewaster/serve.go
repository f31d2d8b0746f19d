package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-timewaster/internal/core"
	"github.com/vovakirdan/tui-timewaster/internal/platform/tui"
	"github.com/vovakirdan/tui-timewaster/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the time waster SSH server",
	Long: `Start an SSH server that lets people waste time remotely.

Each SSH user gets their own save ("player:<user>"). Several connections
of the same user share that save; the last write wins.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.timewaster/host_key

Examples:
  timewaster serve                           # Listen on :23234 with auto-generated key
  timewaster serve --ssh :2222               # Listen on port 2222
  timewaster serve --host-key ./my_host_key  # Use specific host key
  timewaster serve --db ./saves.db           # Use specific database
  timewaster serve --idle-timeout 0          # Never drop idle players

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting, 0 = never (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg)

	// Open storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open saves database", "error", err)
		// Continue without storage
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.SSH.IdleTimeout,
		Game: tui.Options{
			Runtime:           core.RuntimeConfig{TickRate: cfg.Game.FrameRate},
			IdleCheckInterval: cfg.Game.IdleCheckInterval,
			GridColumns:       cfg.Game.GridColumns,
		},
	}, store, logger.WithPrefix("timewaster-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting time waster SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
