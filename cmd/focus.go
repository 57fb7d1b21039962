package cmd

import (
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Focus the next window matching the filters",
	Long: `Focus a window matching the given filters. Repeating the exact same
command cycles through all matches before starting over.`,
	RunE: runFocus,
}

var focusOrSpawnCmd = &cobra.Command{
	Use:   "focus-or-spawn -- COMMAND [ARG...]",
	Short: "Focus a matching window, or spawn the command if there is none",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFocusOrSpawn,
}

func init() {
	rootCmd.AddCommand(focusCmd)
	rootCmd.AddCommand(focusOrSpawnCmd)
	addMatchFlags(focusCmd)
	addMatchFlags(focusOrSpawnCmd)
}

func runFocus(cmd *cobra.Command, args []string) error {
	appID, title := matchFilters(cmd)
	return runCommand(engine.Command{
		Kind:  engine.KindFocus,
		AppID: appID,
		Title: title,
	})
}

func runFocusOrSpawn(cmd *cobra.Command, args []string) error {
	appID, title := matchFilters(cmd)
	return runCommand(engine.Command{
		Kind:    engine.KindFocusOrSpawn,
		AppID:   appID,
		Title:   title,
		Command: args,
	})
}
