package state

import (
	"testing"

	"github.com/Keyruu/nirius/internal/niri"
)

func u64(v uint64) *uint64 { return &v }

func win(id uint64) niri.Window {
	return niri.Window{ID: id}
}

func TestUpsertWindow_AppendsAndReplacesInPlace(t *testing.T) {
	s := New()
	s.UpsertWindow(win(1))
	s.UpsertWindow(win(2))

	title := "updated"
	s.UpsertWindow(niri.Window{ID: 1, Title: &title})

	windows := s.Windows()
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	// Position preserved on replace.
	if windows[0].ID != 1 || windows[0].Title == nil || *windows[0].Title != "updated" {
		t.Errorf("expected window 1 replaced in place, got %+v", windows[0])
	}
}

func TestUpsertWindow_FocusedClearsOtherFocus(t *testing.T) {
	s := New()
	s.UpsertWindow(niri.Window{ID: 1, IsFocused: true})
	s.UpsertWindow(niri.Window{ID: 2, IsFocused: true})

	focusedCount := 0
	for _, w := range s.Windows() {
		if w.IsFocused {
			focusedCount++
		}
	}
	if focusedCount != 1 {
		t.Errorf("expected exactly one focused window, got %d", focusedCount)
	}
	if w, ok := s.FocusedWindow(); !ok || w.ID != 2 {
		t.Errorf("expected window 2 focused, got %+v", w)
	}
}

func TestRemoveWindow_PurgesAllStructures(t *testing.T) {
	s := New()
	s.UpsertWindow(win(1))
	s.UpsertWindow(win(2))
	s.ToggleMark("m", 1)
	s.ToggleMark("m", 2)
	s.ToggleMark("other", 1)
	s.ToggleFollow(1)
	s.AddScratchpad(1)
	s.MarkVisited(1)

	remaining := s.RemoveWindow(1)
	if remaining != 1 {
		t.Errorf("expected 1 remaining window, got %d", remaining)
	}
	if _, ok := s.Window(1); ok {
		t.Error("expected window 1 gone")
	}
	if ids, _ := s.PruneMark("m"); len(ids) != 1 || ids[0] != 2 {
		t.Errorf("expected mark m pruned to [2], got %v", ids)
	}
	if ids, _ := s.PruneMark("other"); len(ids) != 0 {
		t.Errorf("expected mark other emptied, got %v", ids)
	}
	if got := s.FollowModeWindows(); len(got) != 0 {
		t.Errorf("expected follow-mode purged, got %v", got)
	}
	if s.InScratchpad(1) {
		t.Error("expected scratchpad purged")
	}
	if got := s.Visited(); len(got) != 0 {
		t.Errorf("expected cycle memory purged, got %v", got)
	}
}

func TestSetFocus_MovesWindowToRecencyEnd(t *testing.T) {
	s := New()
	s.UpsertWindow(win(1))
	s.UpsertWindow(win(2))
	s.UpsertWindow(win(3))

	s.SetFocus(u64(1))

	windows := s.Windows()
	if windows[len(windows)-1].ID != 1 {
		t.Errorf("expected window 1 at the recency end, got order %v", ids(windows))
	}
	if w, ok := s.FocusedWindow(); !ok || w.ID != 1 {
		t.Errorf("expected window 1 focused, got %+v", w)
	}
}

func TestSetFocus_NilClearsFocus(t *testing.T) {
	s := New()
	s.UpsertWindow(niri.Window{ID: 1, IsFocused: true})

	s.SetFocus(nil)
	if _, ok := s.FocusedWindow(); ok {
		t.Error("expected no focused window after desktop focus")
	}
}

func TestSetFocus_UnknownIDIsNotAnError(t *testing.T) {
	s := New()
	s.UpsertWindow(niri.Window{ID: 1, IsFocused: true})

	s.SetFocus(u64(99))
	if _, ok := s.FocusedWindow(); ok {
		t.Error("expected focus cleared when the id names no window")
	}
}

func TestBottomWorkspace(t *testing.T) {
	s := New()
	s.ReplaceWorkspaces([]niri.Workspace{
		{ID: 10, Idx: 1, Output: "eDP-1"},
		{ID: 11, Idx: 3, Output: "eDP-1"},
		{ID: 12, Idx: 2, Output: "eDP-1"},
		{ID: 20, Idx: 9, Output: "HDMI-A-1"},
	})

	ws, err := s.BottomWorkspace("eDP-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ws.ID != 11 {
		t.Errorf("expected workspace 11 (highest idx on eDP-1), got %d", ws.ID)
	}

	if _, err := s.BottomWorkspace("DP-3"); err == nil {
		t.Error("expected error for output without workspaces")
	}
}

func TestFocusWorkspace(t *testing.T) {
	s := New()
	s.ReplaceWorkspaces([]niri.Workspace{
		{ID: 1, Idx: 1, Output: "eDP-1", IsFocused: true},
		{ID: 2, Idx: 2, Output: "eDP-1"},
	})

	s.FocusWorkspace(2)
	ws, ok := s.FocusedWorkspace()
	if !ok || ws.ID != 2 {
		t.Errorf("expected workspace 2 focused, got %+v", ws)
	}
}

func TestToggleMark_KeepsInsertionOrder(t *testing.T) {
	s := New()
	s.UpsertWindow(win(3))
	s.UpsertWindow(win(1))
	s.UpsertWindow(win(2))
	s.ToggleMark("m", 3)
	s.ToggleMark("m", 1)
	s.ToggleMark("m", 2)

	s.ToggleMark("m", 1)

	ids, _ := s.PruneMark("m")
	if len(ids) != 2 || ids[0] != 3 || ids[1] != 2 {
		t.Errorf("expected [3 2] preserving insertion order, got %v", ids)
	}
}

func TestPruneMark_UnknownMark(t *testing.T) {
	s := New()
	if _, ok := s.PruneMark("nope"); ok {
		t.Error("expected unknown mark to report !ok")
	}
}

func TestMarkVisited_NoDuplicates(t *testing.T) {
	s := New()
	s.MarkVisited(1)
	s.MarkVisited(1)
	s.MarkVisited(2)

	if got := s.Visited(); len(got) != 2 {
		t.Errorf("expected [1 2], got %v", got)
	}
}

func TestBeginCommand_ResetsOnChangeOnly(t *testing.T) {
	s := New()
	s.BeginCommand("focus:a")
	s.MarkVisited(1)

	s.BeginCommand("focus:a")
	if got := s.Visited(); len(got) != 1 {
		t.Errorf("expected memory kept for the identical command, got %v", got)
	}

	s.BeginCommand("focus:b")
	if got := s.Visited(); len(got) != 0 {
		t.Errorf("expected memory cleared for a different command, got %v", got)
	}
}

func ids(windows []niri.Window) []uint64 {
	out := make([]uint64, len(windows))
	for i, w := range windows {
		out[i] = w.ID
	}
	return out
}
