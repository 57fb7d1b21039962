package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestMarkCommands_HaveMarkFlag(t *testing.T) {
	for _, c := range []*cobra.Command{toggleMarkCmd, focusMarkedCmd, listMarkedCmd} {
		if c.Flags().Lookup("mark") == nil {
			t.Errorf("expected flag --mark on %s", c.Name())
		}
	}
}

func TestListMarked_HasAllFlag(t *testing.T) {
	if listMarkedCmd.Flags().Lookup("all") == nil {
		t.Error("expected flag --all on list-marked")
	}
}
