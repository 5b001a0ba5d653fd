package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/velikanov/astro-arcade/internal/platform/tui"
	"github.com/velikanov/astro-arcade/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeGame   string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a game over SSH",
	Long: `Start an SSH server that lets remote players connect and play
in their own terminal. Each connection gets an independent session.

Examples:
  arcade serve
  arcade serve --ssh :2222 --game starfall_blitz`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "path to SSH host key (generated if absent)")
	serveCmd.Flags().StringVar(&flagServeGame, "game", "starfall", "game to serve")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "disconnect idle sessions after this duration")
}

func runServe(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagServeGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", flagServeGame)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.GameID = flagServeGame
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = flagIdleTimeout
	if flagHostKey != "" {
		cfg.HostKeyPath = flagHostKey
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %q on ssh://%s (ctrl+c to stop)\n", flagServeGame, server.Addr())
	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
