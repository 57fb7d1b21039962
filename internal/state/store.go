// Package state is the daemon's mirror of compositor state plus the local
// structures built on top of it: marks, follow-mode, scratchpad, and the
// cycle memory behind "press again for the next match".
package state

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Keyruu/nirius/internal/niri"
)

// Store is the single shared state instance. Every method is atomic: a
// reader never sees a half-applied mutation. The window slice is kept in
// recency order, most recently focused last.
type Store struct {
	mu         sync.RWMutex
	windows    []niri.Window
	workspaces []niri.Workspace
	marks      map[string][]uint64
	followMode []uint64
	scratchpad []uint64
	visited    []uint64
	lastKey    string
}

func New() *Store {
	return &Store{marks: make(map[string][]uint64)}
}

// UpsertWindow replaces a known window in place or appends a new one. A
// focused incoming window clears every other focused flag first, keeping
// the single-focus invariant.
func (s *Store) UpsertWindow(w niri.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w.IsFocused {
		for i := range s.windows {
			s.windows[i].IsFocused = false
		}
	}
	for i := range s.windows {
		if s.windows[i].ID == w.ID {
			s.windows[i] = w
			return
		}
	}
	s.windows = append(s.windows, w)
}

// ReplaceWindows swaps in a full window list, e.g. from niri's initial
// WindowsChanged snapshot.
func (s *Store) ReplaceWindows(ws []niri.Window) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = append([]niri.Window(nil), ws...)
}

// RemoveWindow deletes the window and purges its id from marks, the
// follow-mode set, the scratchpad set, and cycle memory in one critical
// section. It returns the number of remaining windows.
func (s *Store) RemoveWindow(id uint64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.windows {
		if s.windows[i].ID == id {
			s.windows = append(s.windows[:i], s.windows[i+1:]...)
			break
		}
	}
	for mark, ids := range s.marks {
		s.marks[mark] = without(ids, id)
	}
	s.followMode = without(s.followMode, id)
	s.scratchpad = without(s.scratchpad, id)
	s.visited = without(s.visited, id)
	return len(s.windows)
}

// SetFocus clears focus everywhere, then focuses id when it names a known
// window and moves that window to the recency end. A nil id means desktop
// focus; an unknown id is not an error.
func (s *Store) SetFocus(id *uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.windows {
		s.windows[i].IsFocused = false
	}
	if id == nil {
		return
	}
	for i := range s.windows {
		if s.windows[i].ID == *id {
			w := s.windows[i]
			w.IsFocused = true
			s.windows = append(append(s.windows[:i], s.windows[i+1:]...), w)
			return
		}
	}
}

// ReplaceWorkspaces swaps in the full workspace list.
func (s *Store) ReplaceWorkspaces(ws []niri.Workspace) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaces = append([]niri.Workspace(nil), ws...)
}

// FocusWorkspace marks one workspace focused and unfocuses the rest.
func (s *Store) FocusWorkspace(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.workspaces {
		s.workspaces[i].IsFocused = s.workspaces[i].ID == id
	}
}

// BottomWorkspace returns the workspace with the highest index on the
// given output. niri guarantees this is the empty trailing workspace, which
// makes it the scratchpad target.
func (s *Store) BottomWorkspace(output string) (niri.Workspace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var bottom niri.Workspace
	found := false
	for _, ws := range s.workspaces {
		if ws.Output != output {
			continue
		}
		if !found || ws.Idx > bottom.Idx {
			bottom = ws
			found = true
		}
	}
	if !found {
		return niri.Workspace{}, fmt.Errorf("no workspaces on output %q", output)
	}
	return bottom, nil
}

// Windows returns a copy of the window list in recency order.
func (s *Store) Windows() []niri.Window {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]niri.Window(nil), s.windows...)
}

// Window returns the window with the given id.
func (s *Store) Window(id uint64) (niri.Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.windows {
		if w.ID == id {
			return w, true
		}
	}
	return niri.Window{}, false
}

// FocusedWindow returns the window carrying the focused flag, if any.
func (s *Store) FocusedWindow() (niri.Window, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.windows {
		if w.IsFocused {
			return w, true
		}
	}
	return niri.Window{}, false
}

// FocusedWorkspace returns the focused workspace, if any.
func (s *Store) FocusedWorkspace() (niri.Workspace, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, ws := range s.workspaces {
		if ws.IsFocused {
			return ws, true
		}
	}
	return niri.Workspace{}, false
}

// ToggleMark adds id to the named mark or removes it again. It reports
// whether the id was added.
func (s *Store) ToggleMark(mark string, id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.marks[mark]
	for _, v := range ids {
		if v == id {
			s.marks[mark] = without(ids, id)
			return false
		}
	}
	s.marks[mark] = append(ids, id)
	return true
}

// Marks returns all mark names in sorted order.
func (s *Store) Marks() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.marks))
	for name := range s.marks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PruneMark drops ids that no longer name an existing window from the mark
// and returns the remaining ids in insertion order. ok is false when the
// mark is unknown.
func (s *Store) PruneMark(mark string) (ids []uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.marks[mark]
	if !ok {
		return nil, false
	}
	kept := stored[:0]
	for _, id := range stored {
		if s.hasWindow(id) {
			kept = append(kept, id)
		}
	}
	s.marks[mark] = kept
	return append([]uint64(nil), kept...), true
}

// ToggleFollow enrolls id in follow-mode or removes it. It reports whether
// the id was added.
func (s *Store) ToggleFollow(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.followMode {
		if v == id {
			s.followMode = without(s.followMode, id)
			return false
		}
	}
	s.followMode = append(s.followMode, id)
	return true
}

// FollowModeWindows returns the enrolled window ids in insertion order.
func (s *Store) FollowModeWindows() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uint64(nil), s.followMode...)
}

// InScratchpad reports whether id is parked in the scratchpad.
func (s *Store) InScratchpad(id uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.scratchpad {
		if v == id {
			return true
		}
	}
	return false
}

// AddScratchpad appends id to the scratchpad set if not already present.
func (s *Store) AddScratchpad(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.scratchpad {
		if v == id {
			return
		}
	}
	s.scratchpad = append(s.scratchpad, id)
}

// RemoveScratchpad removes id from the scratchpad set.
func (s *Store) RemoveScratchpad(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scratchpad = without(s.scratchpad, id)
}

// ScratchpadWindows returns the parked window ids in insertion order.
func (s *Store) ScratchpadWindows() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uint64(nil), s.scratchpad...)
}

// Visited returns the ids already chosen in the current cycle.
func (s *Store) Visited() []uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]uint64(nil), s.visited...)
}

// MarkVisited records id in cycle memory, once.
func (s *Store) MarkVisited(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.visited {
		if v == id {
			return
		}
	}
	s.visited = append(s.visited, id)
}

// ResetVisited clears cycle memory, starting a fresh cycle.
func (s *Store) ResetVisited() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visited = nil
}

// BeginCommand compares the incoming command key against the previous one
// and clears cycle memory when they differ. Repeating the exact same
// command keeps the memory so matches can be cycled through.
func (s *Store) BeginCommand(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key != s.lastKey {
		s.visited = nil
		s.lastKey = key
	}
}

func (s *Store) hasWindow(id uint64) bool {
	for _, w := range s.windows {
		if w.ID == id {
			return true
		}
	}
	return false
}

func without(ids []uint64, id uint64) []uint64 {
	kept := ids[:0]
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
