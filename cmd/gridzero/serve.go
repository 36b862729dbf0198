package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridzero/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Grid Zero SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent session with a level picker.
Nothing is shared between connections except the level pack.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.gridzero/host_key

Examples:
  gridzero serve                           # Listen on :23234 with auto-generated key
  gridzero serve --ssh :2222               # Listen on port 2222
  gridzero serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes (0 = from config)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		fail(err)
	}
	if _, err := loadCatalog(cfg, logger); err != nil {
		fail(err)
	}

	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKey = flagHostKey
	}
	if flagIdleTimeout > 0 {
		cfg.Server.IdleTimeoutMin = flagIdleTimeout
	}

	theme, ok := tui.ThemeByName(cfg.Display.Theme)
	if !ok {
		logger.Warn("unknown theme, using default", "theme", cfg.Display.Theme)
	}

	serverCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: time.Duration(cfg.Server.IdleTimeoutMin) * time.Minute,
		Runtime:     cfg.Runtime(80, 24),
		Options: tui.Options{
			Theme:  theme,
			Logger: logger,
			Mouse:  cfg.Display.Mouse,
		},
	}

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fail(fmt.Errorf("creating server: %w", err))
	}

	fmt.Printf("Starting Grid Zero SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail(fmt.Errorf("server: %w", err))
	}
}
