package cmd

import (
	"log/slog"
	"os"

	"github.com/Keyruu/nirius/internal/config"
	"github.com/Keyruu/nirius/internal/daemon"
	"github.com/Keyruu/nirius/internal/niri"
	"github.com/Keyruu/nirius/internal/state"
	"github.com/spf13/cobra"
)

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the niriusd daemon",
	Long: `Run the companion daemon. It mirrors niri's window and workspace state
from the event stream and executes commands sent by the nirius client
over the control socket.`,
	RunE: runDaemon,
}

func init() {
	rootCmd.AddCommand(daemonCmd)
	daemonCmd.Flags().String("log-level", "", "Override the configured log level (debug, info, warn, error)")
}

func runDaemon(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	d := daemon.New(state.New(), niri.NewClient(), logger, cfg.SocketPath())
	return d.Run()
}
