package cmd

import (
	"testing"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	expected := []string{
		"daemon", "serve", "nop",
		"focus", "focus-or-spawn",
		"move-to-current-workspace", "move-to-current-workspace-or-spawn",
		"toggle-follow-mode",
		"toggle-mark", "focus-marked", "list-marked",
		"scratchpad-toggle", "scratchpad-show",
	}
	commands := rootCmd.Commands()

	found := make(map[string]bool)
	for _, c := range commands {
		found[c.Name()] = true
	}

	for _, name := range expected {
		if !found[name] {
			t.Errorf("expected subcommand %q not found", name)
		}
	}
}

func TestRootCommand_Version(t *testing.T) {
	if rootCmd.Version == "" {
		t.Error("root command version should be set")
	}
}
