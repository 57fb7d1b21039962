package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Keyruu/nirius/internal/niri"
	"github.com/Keyruu/nirius/internal/state"
)

// Domain errors. ErrNoMatchingWindow is the one the OrSpawn variants
// pattern-match on; everything else propagates unchanged.
var (
	ErrNoMatchingWindow   = errors.New("no matching window")
	ErrNoFocusedWindow    = errors.New("no focused window")
	ErrNoFocusedWorkspace = errors.New("no focused workspace")
	ErrUnknownMark        = errors.New("unknown mark")
	ErrNoMarkedWindow     = errors.New("no marked window remaining")
	ErrEmptyScratchpad    = errors.New("scratchpad is empty")
	ErrInvalidFilter      = errors.New("invalid filter")
)

// Compositor is the one-method view of the niri client the engine needs.
type Compositor interface {
	Request(req niri.Request) (*niri.Response, error)
}

// Engine dispatches client commands. The store lock is never held across a
// compositor round trip: every method snapshots state first and issues IPC
// afterwards.
type Engine struct {
	store *state.Store
	niri  Compositor
}

func New(store *state.Store, comp Compositor) *Engine {
	return &Engine{store: store, niri: comp}
}

// Dispatch runs one command and folds its outcome into a Result. Cycle
// memory is reset first whenever the command differs structurally from the
// previous one.
func (e *Engine) Dispatch(cmd Command) Result {
	e.store.BeginCommand(cmd.CycleKey())
	msg, err := e.exec(cmd)
	if err != nil {
		return Result{OK: false, Message: err.Error()}
	}
	return Result{OK: true, Message: msg}
}

func (e *Engine) exec(cmd Command) (string, error) {
	switch cmd.Kind {
	case KindFocus:
		return e.focus(cmd)
	case KindFocusOrSpawn:
		return e.orSpawn(cmd, e.focus)
	case KindMoveToCurrentWorkspace:
		return e.moveToCurrentWorkspace(cmd)
	case KindMoveToCurrentWorkspaceOrSpawn:
		return e.orSpawn(cmd, e.moveToCurrentWorkspace)
	case KindToggleFollowMode:
		return e.toggleFollowMode()
	case KindToggleMark:
		return e.toggleMark(cmd)
	case KindFocusMarked:
		return e.focusMarked(cmd)
	case KindListMarked:
		return e.listMarked(cmd)
	case KindScratchpadToggle:
		return e.scratchpadToggle()
	case KindScratchpadShow:
		return e.scratchpadShow()
	case KindNop:
		return "", nil
	default:
		return "", fmt.Errorf("unknown command %q", cmd.Kind)
	}
}

// focus picks the next matching window, honoring cycle memory, and focuses
// it. Candidate order: the focused window sorts last, unvisited windows
// before visited ones, ascending id as the final tie-break.
func (e *Engine) focus(cmd Command) (string, error) {
	m, err := newMatcher(cmd)
	if err != nil {
		return "", err
	}
	var candidates []niri.Window
	for _, w := range e.store.Windows() {
		if m.matches(w) {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 {
		return "", ErrNoMatchingWindow
	}

	visited := idSet(e.store.Visited())
	allVisited := true
	for _, w := range candidates {
		if !visited[w.ID] {
			allVisited = false
			break
		}
	}
	if allVisited {
		e.store.ResetVisited()
		visited = map[uint64]bool{}
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.IsFocused != b.IsFocused {
			return !a.IsFocused
		}
		if visited[a.ID] != visited[b.ID] {
			return !visited[a.ID]
		}
		return a.ID < b.ID
	})

	chosen := candidates[0].ID
	e.store.MarkVisited(chosen)
	if err := e.focusWindow(chosen); err != nil {
		return "", err
	}
	return fmt.Sprintf("Focused window with id %d", chosen), nil
}

// orSpawn falls back to spawning the command line when fn found no
// matching window. Any other failure propagates unchanged.
func (e *Engine) orSpawn(cmd Command, fn func(Command) (string, error)) (string, error) {
	msg, err := fn(cmd)
	if errors.Is(err, ErrNoMatchingWindow) {
		return e.spawn(cmd.Command)
	}
	return msg, err
}

func (e *Engine) spawn(command []string) (string, error) {
	if err := e.action(niri.Action{Spawn: &niri.Spawn{Command: command}}); err != nil {
		return "", err
	}
	return "Spawned successfully", nil
}

// moveToCurrentWorkspace moves the lowest-id match not already on the
// focused workspace. Deliberately single-shot: unlike focus it keeps no
// cycle memory.
func (e *Engine) moveToCurrentWorkspace(cmd Command) (string, error) {
	m, err := newMatcher(cmd)
	if err != nil {
		return "", err
	}
	ws, ok := e.store.FocusedWorkspace()
	if !ok {
		return "", ErrNoFocusedWorkspace
	}
	var chosen *niri.Window
	for _, w := range e.store.Windows() {
		if !m.matches(w) {
			continue
		}
		if w.WorkspaceID != nil && *w.WorkspaceID == ws.ID {
			continue
		}
		if chosen == nil || w.ID < chosen.ID {
			chosen = &w
		}
	}
	if chosen == nil {
		return "", ErrNoMatchingWindow
	}
	if err := e.moveWindowToWorkspace(chosen.ID, ws.ID, false); err != nil {
		return "", err
	}
	if cmd.Focus {
		if err := e.focusWindow(chosen.ID); err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("Moved window with id %d to the current workspace", chosen.ID), nil
}

func (e *Engine) toggleFollowMode() (string, error) {
	w, ok := e.store.FocusedWindow()
	if !ok {
		return "", ErrNoFocusedWindow
	}
	if e.store.ToggleFollow(w.ID) {
		return fmt.Sprintf("Enabled follow-mode for window %d", w.ID), nil
	}
	return fmt.Sprintf("Disabled follow-mode for window %d", w.ID), nil
}

func (e *Engine) toggleMark(cmd Command) (string, error) {
	w, ok := e.store.FocusedWindow()
	if !ok {
		return "", ErrNoFocusedWindow
	}
	mark := cmd.markName()
	if e.store.ToggleMark(mark, w.ID) {
		return fmt.Sprintf("Marked window %d with %q", w.ID, mark), nil
	}
	return fmt.Sprintf("Removed mark %q from window %d", mark, w.ID), nil
}

// focusMarked cycles through the windows of one mark. The mark is pruned
// of dead ids first, and the currently focused window always counts as
// visited even when it is not marked itself.
func (e *Engine) focusMarked(cmd Command) (string, error) {
	mark := cmd.markName()
	ids, ok := e.store.PruneMark(mark)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}

	visited := idSet(e.store.Visited())
	var focusedID uint64
	hasFocus := false
	if w, ok := e.store.FocusedWindow(); ok {
		focusedID = w.ID
		hasFocus = true
	}

	unvisited := unvisitedOf(ids, visited, focusedID, hasFocus)
	if len(unvisited) == 0 {
		e.store.ResetVisited()
		unvisited = unvisitedOf(ids, nil, focusedID, hasFocus)
		if len(unvisited) == 0 {
			return "", fmt.Errorf("%w for mark %q", ErrNoMarkedWindow, mark)
		}
	}

	chosen := unvisited[0]
	for _, id := range unvisited[1:] {
		if id < chosen {
			chosen = id
		}
	}
	e.store.MarkVisited(chosen)
	if err := e.focusWindow(chosen); err != nil {
		return "", err
	}
	return fmt.Sprintf("Focused window with id %d", chosen), nil
}

func unvisitedOf(ids []uint64, visited map[uint64]bool, focusedID uint64, hasFocus bool) []uint64 {
	var out []uint64
	for _, id := range ids {
		if hasFocus && id == focusedID {
			continue
		}
		if visited[id] {
			continue
		}
		out = append(out, id)
	}
	return out
}

// listMarked renders the existing members of one mark, or of every mark
// with All set, one window per line.
func (e *Engine) listMarked(cmd Command) (string, error) {
	if cmd.All {
		var lines []string
		for _, mark := range e.store.Marks() {
			ids, _ := e.store.PruneMark(mark)
			for _, id := range ids {
				if w, ok := e.store.Window(id); ok {
					lines = append(lines, fmt.Sprintf("[%s] %s", mark, windowLine(w)))
				}
			}
		}
		return strings.Join(lines, "\n"), nil
	}

	mark := cmd.markName()
	ids, ok := e.store.PruneMark(mark)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
	var lines []string
	for _, id := range ids {
		if w, ok := e.store.Window(id); ok {
			lines = append(lines, windowLine(w))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func windowLine(w niri.Window) string {
	appID := "-"
	if w.AppID != nil {
		appID = *w.AppID
	}
	title := ""
	if w.Title != nil {
		title = *w.Title
	}
	workspace := "-"
	if w.WorkspaceID != nil {
		workspace = fmt.Sprintf("%d", *w.WorkspaceID)
	}
	return fmt.Sprintf("%d: %s %q (workspace %s)", w.ID, appID, title, workspace)
}

// scratchpadToggle parks the focused window in the scratchpad, or releases
// it again where it currently is.
func (e *Engine) scratchpadToggle() (string, error) {
	w, ok := e.store.FocusedWindow()
	if !ok {
		return "", ErrNoFocusedWindow
	}
	if e.store.InScratchpad(w.ID) {
		e.store.RemoveScratchpad(w.ID)
		return fmt.Sprintf("Removed window %d from the scratchpad", w.ID), nil
	}
	e.store.AddScratchpad(w.ID)
	if err := e.hideScratchpadWindows(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Moved window %d to the scratchpad", w.ID), nil
}

// scratchpadShow brings the oldest scratchpad window to the focused
// workspace, or hides the focused window again when it is itself parked.
func (e *Engine) scratchpadShow() (string, error) {
	if w, ok := e.store.FocusedWindow(); ok && e.store.InScratchpad(w.ID) {
		if err := e.hideScratchpadWindows(); err != nil {
			return "", err
		}
		return fmt.Sprintf("Hid window %d back into the scratchpad", w.ID), nil
	}
	ids := e.store.ScratchpadWindows()
	if len(ids) == 0 {
		return "", ErrEmptyScratchpad
	}
	ws, ok := e.store.FocusedWorkspace()
	if !ok {
		return "", ErrNoFocusedWorkspace
	}
	first := ids[0]
	if err := e.moveWindowToWorkspace(first, ws.ID, false); err != nil {
		return "", err
	}
	if err := e.focusWindow(first); err != nil {
		return "", err
	}
	return fmt.Sprintf("Showing scratchpad window %d", first), nil
}

// hideScratchpadWindows relocates every scratchpad window, in insertion
// order, to the bottom workspace of the focused output, floating each one
// first if it is not floating already.
func (e *Engine) hideScratchpadWindows() error {
	ws, ok := e.store.FocusedWorkspace()
	if !ok {
		return ErrNoFocusedWorkspace
	}
	bottom, err := e.store.BottomWorkspace(ws.Output)
	if err != nil {
		return err
	}
	for _, id := range e.store.ScratchpadWindows() {
		w, ok := e.store.Window(id)
		if !ok {
			continue
		}
		if !w.IsFloating {
			if err := e.action(niri.Action{ToggleWindowFloating: &niri.ToggleWindowFloating{ID: id}}); err != nil {
				return err
			}
		}
		if err := e.moveWindowToWorkspace(id, bottom.ID, false); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) focusWindow(id uint64) error {
	return e.action(niri.Action{FocusWindow: &niri.FocusWindow{ID: id}})
}

func (e *Engine) moveWindowToWorkspace(id, workspaceID uint64, focus bool) error {
	return e.action(niri.Action{MoveWindowToWorkspace: &niri.MoveWindowToWorkspace{
		WindowID:  &id,
		Reference: niri.WorkspaceReference{ID: workspaceID},
		Focus:     focus,
	}})
}

// action issues one compositor action and demands a Handled reply.
func (e *Engine) action(a niri.Action) error {
	resp, err := e.niri.Request(niri.ActionRequest(a))
	if err != nil {
		return err
	}
	if !resp.Handled {
		return fmt.Errorf("received unexpected reply: %v", resp)
	}
	return nil
}

func idSet(ids []uint64) map[uint64]bool {
	set := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
