package engine

import (
	"fmt"
	"regexp"

	"github.com/Keyruu/nirius/internal/niri"
)

// matcher holds the compiled window filters of one command.
type matcher struct {
	appID *regexp.Regexp
	title *regexp.Regexp
}

// newMatcher compiles the command's filters. A bad pattern is a domain
// error surfaced to the client, not a daemon failure.
func newMatcher(cmd Command) (*matcher, error) {
	m := &matcher{}
	if cmd.AppID != nil {
		rx, err := regexp.Compile(*cmd.AppID)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidFilter, *cmd.AppID, err)
		}
		m.appID = rx
	}
	if cmd.Title != nil {
		rx, err := regexp.Compile(*cmd.Title)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %v", ErrInvalidFilter, *cmd.Title, err)
		}
		m.title = rx
	}
	return m, nil
}

// matches reports whether the window satisfies all present filters. A
// window lacking an app-id or title never matches the corresponding
// filter; with no filters at all, every window matches.
func (m *matcher) matches(w niri.Window) bool {
	if m.appID != nil && (w.AppID == nil || !m.appID.MatchString(*w.AppID)) {
		return false
	}
	if m.title != nil && (w.Title == nil || !m.title.MatchString(*w.Title)) {
		return false
	}
	return true
}
