package cmd

import (
	"github.com/Keyruu/nirius/internal/config"
	"github.com/Keyruu/nirius/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing nirius commands as tools",
	Long: `Start a Model Context Protocol (MCP) server over stdio that exposes
every nirius command as a tool. Tool calls are forwarded to the running
niriusd daemon, so agents can drive the compositor the same way a
keybinding would.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	return server.New(cfg.SocketPath()).ServeStdio()
}
