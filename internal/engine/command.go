// Package engine executes nirius commands against the state store and the
// compositor. It also defines the command and result objects exchanged
// with the client over the control socket.
package engine

import "encoding/json"

// Kind names a nirius command.
type Kind string

const (
	KindFocus                         Kind = "focus"
	KindFocusOrSpawn                  Kind = "focus-or-spawn"
	KindMoveToCurrentWorkspace        Kind = "move-to-current-workspace"
	KindMoveToCurrentWorkspaceOrSpawn Kind = "move-to-current-workspace-or-spawn"
	KindToggleFollowMode              Kind = "toggle-follow-mode"
	KindToggleMark                    Kind = "toggle-mark"
	KindFocusMarked                   Kind = "focus-marked"
	KindListMarked                    Kind = "list-marked"
	KindScratchpadToggle              Kind = "scratchpad-toggle"
	KindScratchpadShow                Kind = "scratchpad-show"
	KindNop                           Kind = "nop"
)

// DefaultMark is used by mark commands when no mark name is given.
const DefaultMark = "default"

// Command is the wire form of one client command. AppID and Title are
// regexp filters; nil means the filter is absent, which is different from
// an empty pattern (an absent app-id on a window never matches a present
// filter).
type Command struct {
	Kind    Kind     `json:"cmd"`
	AppID   *string  `json:"app_id,omitempty"`
	Title   *string  `json:"title,omitempty"`
	Command []string `json:"command,omitempty"`
	Mark    string   `json:"mark,omitempty"`
	All     bool     `json:"all,omitempty"`
	Focus   bool     `json:"focus,omitempty"`
}

// CycleKey is the canonical serialization of the command, used to decide
// whether the incoming command equals the previous one. Any difference in
// kind or parameters resets cycle memory.
func (c Command) CycleKey() string {
	b, err := json.Marshal(c)
	if err != nil {
		return string(c.Kind)
	}
	return string(b)
}

// markName returns the effective mark for mark commands.
func (c Command) markName() string {
	if c.Mark == "" {
		return DefaultMark
	}
	return c.Mark
}

// Result is the wire form of a command outcome. On failure Message holds
// the error text.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
