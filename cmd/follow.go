package cmd

import (
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var toggleFollowModeCmd = &cobra.Command{
	Use:   "toggle-follow-mode",
	Short: "Toggle follow-mode for the focused window",
	Long: `A follow-mode window moves along to whatever workspace gains focus,
until follow-mode is toggled off again.`,
	RunE: runToggleFollowMode,
}

func init() {
	rootCmd.AddCommand(toggleFollowModeCmd)
}

func runToggleFollowMode(cmd *cobra.Command, args []string) error {
	return runCommand(engine.Command{Kind: engine.KindToggleFollowMode})
}
