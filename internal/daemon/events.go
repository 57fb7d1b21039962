package daemon

import (
	"errors"
	"io"
	"os"

	"github.com/Keyruu/nirius/internal/niri"
)

// syncEvents subscribes to niri's event feed and applies every event to
// the store for the daemon's lifetime. EOF means niri has quit, which ends
// the daemon cleanly; any other read error only skips that event.
func (d *Daemon) syncEvents() {
	stream, err := niri.SubscribeEvents()
	if err != nil {
		d.log.Error("cannot subscribe to niri event stream", "error", err)
		os.Exit(1)
	}
	defer stream.Close()

	for {
		ev, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				d.log.Info("niri has quit and so do I, goodbye")
				os.Exit(0)
			}
			d.log.Error("could not read event", "error", err)
			continue
		}
		d.handleEvent(ev)
	}
}

// handleEvent maps one compositor event onto store mutations. Events with
// no handler are deliberately ignored.
func (d *Daemon) handleEvent(ev *niri.Event) {
	switch {
	case ev.WindowsChanged != nil:
		d.store.ReplaceWindows(ev.WindowsChanged.Windows)
	case ev.WindowOpenedOrChanged != nil:
		d.store.UpsertWindow(ev.WindowOpenedOrChanged.Window)
	case ev.WindowClosed != nil:
		remaining := d.store.RemoveWindow(ev.WindowClosed.ID)
		d.log.Debug("window closed", "id", ev.WindowClosed.ID, "remaining", remaining)
	case ev.WindowFocusChanged != nil:
		d.store.SetFocus(ev.WindowFocusChanged.ID)
	case ev.WorkspacesChanged != nil:
		d.store.ReplaceWorkspaces(ev.WorkspacesChanged.Workspaces)
	case ev.WorkspaceActivated != nil:
		if ev.WorkspaceActivated.Focused {
			d.store.FocusWorkspace(ev.WorkspaceActivated.ID)
			d.moveFollowModeWindows(ev.WorkspaceActivated.ID)
		}
	}
}

// moveFollowModeWindows relocates every enrolled window to the newly
// focused workspace. Individual move failures are logged and the rest of
// the set is still processed.
func (d *Daemon) moveFollowModeWindows(workspaceID uint64) {
	for _, id := range d.store.FollowModeWindows() {
		resp, err := d.niri.Request(niri.ActionRequest(niri.Action{
			MoveWindowToWorkspace: &niri.MoveWindowToWorkspace{
				WindowID:  &id,
				Reference: niri.WorkspaceReference{ID: workspaceID},
				Focus:     true,
			},
		}))
		if err != nil {
			d.log.Error("could not move follow-mode window", "id", id, "error", err)
			continue
		}
		if !resp.Handled {
			d.log.Error("unexpected reply moving follow-mode window", "id", id, "reply", resp)
		}
	}
}
