package cmd

import (
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move-to-current-workspace",
	Short: "Move a matching window to the focused workspace",
	Long: `Move the lowest-id window matching the filters that is not already on
the focused workspace. Single-shot: unlike focus, it does not cycle.`,
	RunE: runMove,
}

var moveOrSpawnCmd = &cobra.Command{
	Use:   "move-to-current-workspace-or-spawn -- COMMAND [ARG...]",
	Short: "Move a matching window here, or spawn the command if there is none",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMoveOrSpawn,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(moveOrSpawnCmd)
	addMatchFlags(moveCmd)
	addMatchFlags(moveOrSpawnCmd)
	moveCmd.Flags().Bool("focus", false, "Focus the window after moving it")
	moveOrSpawnCmd.Flags().Bool("focus", false, "Focus the window after moving it")
}

func runMove(cmd *cobra.Command, args []string) error {
	appID, title := matchFilters(cmd)
	focus, _ := cmd.Flags().GetBool("focus")
	return runCommand(engine.Command{
		Kind:  engine.KindMoveToCurrentWorkspace,
		AppID: appID,
		Title: title,
		Focus: focus,
	})
}

func runMoveOrSpawn(cmd *cobra.Command, args []string) error {
	appID, title := matchFilters(cmd)
	focus, _ := cmd.Flags().GetBool("focus")
	return runCommand(engine.Command{
		Kind:    engine.KindMoveToCurrentWorkspaceOrSpawn,
		AppID:   appID,
		Title:   title,
		Focus:   focus,
		Command: args,
	})
}
