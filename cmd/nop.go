package cmd

import (
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var nopCmd = &cobra.Command{
	Use:   "nop",
	Short: "Do nothing except reset focus cycling",
	Long: `nop has no effect on state or the compositor. Bind it to interrupt a
chain of identical commands, which resets cycle memory.`,
	RunE: runNop,
}

func init() {
	rootCmd.AddCommand(nopCmd)
}

func runNop(cmd *cobra.Command, args []string) error {
	return runCommand(engine.Command{Kind: engine.KindNop})
}
