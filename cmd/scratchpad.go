package cmd

import (
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var scratchpadToggleCmd = &cobra.Command{
	Use:   "scratchpad-toggle",
	Short: "Park the focused window in the scratchpad, or release it",
	RunE:  runScratchpadToggle,
}

var scratchpadShowCmd = &cobra.Command{
	Use:   "scratchpad-show",
	Short: "Bring the oldest scratchpad window to the focused workspace",
	RunE:  runScratchpadShow,
}

func init() {
	rootCmd.AddCommand(scratchpadToggleCmd)
	rootCmd.AddCommand(scratchpadShowCmd)
}

func runScratchpadToggle(cmd *cobra.Command, args []string) error {
	return runCommand(engine.Command{Kind: engine.KindScratchpadToggle})
}

func runScratchpadShow(cmd *cobra.Command, args []string) error {
	return runCommand(engine.Command{Kind: engine.KindScratchpadShow})
}
