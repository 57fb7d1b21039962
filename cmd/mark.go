package cmd

import (
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var toggleMarkCmd = &cobra.Command{
	Use:   "toggle-mark",
	Short: "Add the focused window to a mark, or remove it again",
	RunE:  runToggleMark,
}

var focusMarkedCmd = &cobra.Command{
	Use:   "focus-marked",
	Short: "Cycle focus through the windows of a mark",
	RunE:  runFocusMarked,
}

var listMarkedCmd = &cobra.Command{
	Use:   "list-marked",
	Short: "List the windows of a mark, or of all marks",
	RunE:  runListMarked,
}

func init() {
	rootCmd.AddCommand(toggleMarkCmd)
	rootCmd.AddCommand(focusMarkedCmd)
	rootCmd.AddCommand(listMarkedCmd)
	for _, c := range []*cobra.Command{toggleMarkCmd, focusMarkedCmd, listMarkedCmd} {
		c.Flags().StringP("mark", "m", "", "Mark name (defaults to the configured default mark)")
	}
	listMarkedCmd.Flags().Bool("all", false, "List every mark with its windows")
}

func runToggleMark(cmd *cobra.Command, args []string) error {
	return runCommand(engine.Command{
		Kind: engine.KindToggleMark,
		Mark: markFlag(cmd),
	})
}

func runFocusMarked(cmd *cobra.Command, args []string) error {
	return runCommand(engine.Command{
		Kind: engine.KindFocusMarked,
		Mark: markFlag(cmd),
	})
}

func runListMarked(cmd *cobra.Command, args []string) error {
	all, _ := cmd.Flags().GetBool("all")
	return runCommand(engine.Command{
		Kind: engine.KindListMarked,
		Mark: markFlag(cmd),
		All:  all,
	})
}
