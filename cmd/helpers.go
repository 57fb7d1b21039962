package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Keyruu/nirius/internal/client"
	"github.com/Keyruu/nirius/internal/config"
	"github.com/Keyruu/nirius/internal/engine"
	"github.com/spf13/cobra"
)

var errCommandFailed = errors.New("command failed")

// runCommand sends one command to the daemon and applies the exit
// contract: non-empty success message to stdout, failure message to
// stderr with a non-zero exit, empty messages stay silent.
func runCommand(c engine.Command) error {
	cfg := config.Load()
	res, err := client.Send(cfg.SocketPath(), c)
	if err != nil {
		return err
	}
	msg := strings.TrimSpace(res.Message)
	if res.OK {
		if msg != "" {
			fmt.Println(msg)
		}
		return nil
	}
	if msg != "" {
		fmt.Fprintln(os.Stderr, msg)
	}
	return errCommandFailed
}

// addMatchFlags registers the window filter flags shared by the matching
// commands.
func addMatchFlags(c *cobra.Command) {
	c.Flags().StringP("app-id", "a", "", "Regexp matched against window app-ids")
	c.Flags().StringP("title", "t", "", "Regexp matched against window titles")
}

// matchFilters reads the filter flags. A flag left unset means the filter
// is absent, which matches differently from an empty pattern.
func matchFilters(c *cobra.Command) (appID, title *string) {
	if c.Flags().Changed("app-id") {
		v, _ := c.Flags().GetString("app-id")
		appID = &v
	}
	if c.Flags().Changed("title") {
		v, _ := c.Flags().GetString("title")
		title = &v
	}
	return appID, title
}

// markFlag reads --mark, falling back to the configured default mark.
func markFlag(c *cobra.Command) string {
	mark, _ := c.Flags().GetString("mark")
	if mark == "" {
		mark = config.Load().DefaultMark
	}
	return mark
}
