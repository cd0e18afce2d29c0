package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ilyavolkan/tui-fable/internal/ansi"
	"github.com/ilyavolkan/tui-fable/internal/config"
	"github.com/ilyavolkan/tui-fable/internal/platform/console"
	"github.com/ilyavolkan/tui-fable/internal/terminal"
)

var (
	flagSSHAddr      string
	flagHostKey      string
	flagIdleTimeout  int
	flagDefaultStory string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the fable SSH server",
	Long: `Start an SSH server that lets users connect and play stories.

Each connection gets its own session. The story can be chosen on the
client command line; otherwise the default story is played. Saves are
stored per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.fable/host_key

Examples:
  fable serve                           # Listen on :23235 with auto-generated key
  fable serve --ssh :2223               # Listen on port 2223
  fable serve --story hollow            # Change the default story

Users can connect with:
  ssh localhost -p 23235
  ssh localhost -p 23235 -t hollow      # Pick a story`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagDefaultStory, "story", "lighthouse", "Story played when the client doesn't pick one")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// SSH clients are terminals; style unless the server config says never.
	ansi.SetEnabled(appCfg.Color != terminal.ModeNever)

	cfg := console.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       flagDBPath,
		DefaultStory: flagDefaultStory,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := console.NewSSHServer(cfg, appCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting fable SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
