package cmd

import (
	"fmt"
	"os"

	"github.com/Keyruu/nirius/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nirius",
	Short: "Window-switcher and more for the niri compositor",
	Long: `nirius sends commands to the niriusd daemon (started with
"nirius daemon") which executes them against a live mirror of niri's
window and workspace state.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
}
