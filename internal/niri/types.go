// Package niri speaks niri's JSON IPC: one request and one reply per
// connection, or a persistent event stream. Wire shapes mirror niri's
// Rust enums, so unit variants serialize as bare strings and everything
// else as a single-key object.
package niri

import (
	"encoding/json"
	"fmt"
)

// Window is niri's view of a toplevel window.
type Window struct {
	ID          uint64  `json:"id"`
	Title       *string `json:"title"`
	AppID       *string `json:"app_id"`
	PID         *int32  `json:"pid"`
	WorkspaceID *uint64 `json:"workspace_id"`
	IsFocused   bool    `json:"is_focused"`
	IsFloating  bool    `json:"is_floating"`
	IsUrgent    bool    `json:"is_urgent"`
}

// Workspace is niri's view of a workspace. Idx is the position of the
// workspace on its output; the highest Idx on an output is always the
// empty trailing workspace.
type Workspace struct {
	ID             uint64  `json:"id"`
	Idx            uint8   `json:"idx"`
	Name           *string `json:"name"`
	Output         string  `json:"output"`
	IsActive       bool    `json:"is_active"`
	IsFocused      bool    `json:"is_focused"`
	ActiveWindowID *uint64 `json:"active_window_id"`
}

// RequestKind enumerates the requests this daemon uses.
type RequestKind string

const (
	RequestWindows       RequestKind = "Windows"
	RequestWorkspaces    RequestKind = "Workspaces"
	RequestFocusedWindow RequestKind = "FocusedWindow"
	RequestEventStream   RequestKind = "EventStream"
	RequestAction        RequestKind = "Action"
)

// Request is a single niri IPC request. Action must be set iff Kind is
// RequestAction.
type Request struct {
	Kind   RequestKind
	Action *Action
}

// ActionRequest wraps an action into a request.
func ActionRequest(a Action) Request {
	return Request{Kind: RequestAction, Action: &a}
}

func (r Request) MarshalJSON() ([]byte, error) {
	if r.Kind == RequestAction {
		if r.Action == nil {
			return nil, fmt.Errorf("action request without action")
		}
		return json.Marshal(struct {
			Action *Action `json:"Action"`
		}{r.Action})
	}
	return json.Marshal(string(r.Kind))
}

// Action is niri's action enum; exactly one field is non-nil.
type Action struct {
	FocusWindow           *FocusWindow           `json:"FocusWindow,omitempty"`
	Spawn                 *Spawn                 `json:"Spawn,omitempty"`
	MoveWindowToWorkspace *MoveWindowToWorkspace `json:"MoveWindowToWorkspace,omitempty"`
	ToggleWindowFloating  *ToggleWindowFloating  `json:"ToggleWindowFloating,omitempty"`
}

type FocusWindow struct {
	ID uint64 `json:"id"`
}

type Spawn struct {
	Command []string `json:"command"`
}

type MoveWindowToWorkspace struct {
	WindowID  *uint64            `json:"window_id"`
	Reference WorkspaceReference `json:"reference"`
	Focus     bool               `json:"focus"`
}

type ToggleWindowFloating struct {
	ID uint64 `json:"id"`
}

// WorkspaceReference addresses a workspace by id.
type WorkspaceReference struct {
	ID uint64 `json:"Id"`
}

// Response is niri's reply payload. Exactly one of the variant fields is
// meaningful; Handled covers the bare "Handled" unit variant.
type Response struct {
	Handled       bool
	Windows       []Window
	Workspaces    []Workspace
	FocusedWindow *Window

	raw json.RawMessage
}

func (r *Response) UnmarshalJSON(data []byte) error {
	r.raw = append(json.RawMessage(nil), data...)

	var unit string
	if err := json.Unmarshal(data, &unit); err == nil {
		r.Handled = unit == "Handled"
		return nil
	}

	var v struct {
		Windows       []Window    `json:"Windows"`
		Workspaces    []Workspace `json:"Workspaces"`
		FocusedWindow *Window     `json:"FocusedWindow"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	r.Windows = v.Windows
	r.Workspaces = v.Workspaces
	r.FocusedWindow = v.FocusedWindow
	return nil
}

// String renders the response for error messages, preferring the raw wire
// form when the response came off a socket.
func (r *Response) String() string {
	if len(r.raw) > 0 {
		return string(r.raw)
	}
	if r.Handled {
		return "Handled"
	}
	b, err := json.Marshal(struct {
		Windows       []Window    `json:"Windows,omitempty"`
		Workspaces    []Workspace `json:"Workspaces,omitempty"`
		FocusedWindow *Window     `json:"FocusedWindow,omitempty"`
	}{r.Windows, r.Workspaces, r.FocusedWindow})
	if err != nil {
		return "<unprintable response>"
	}
	return string(b)
}

// reply is niri's Result<Response, String> envelope.
type reply struct {
	Ok  *Response `json:"Ok"`
	Err *string   `json:"Err"`
}

// Event is one entry of niri's event stream. At most one field is non-nil;
// events this daemon does not care about decode to the zero Event.
type Event struct {
	WorkspacesChanged     *WorkspacesChanged     `json:"WorkspacesChanged"`
	WorkspaceActivated    *WorkspaceActivated    `json:"WorkspaceActivated"`
	WindowsChanged        *WindowsChanged        `json:"WindowsChanged"`
	WindowOpenedOrChanged *WindowOpenedOrChanged `json:"WindowOpenedOrChanged"`
	WindowClosed          *WindowClosed          `json:"WindowClosed"`
	WindowFocusChanged    *WindowFocusChanged    `json:"WindowFocusChanged"`
}

type WorkspacesChanged struct {
	Workspaces []Workspace `json:"workspaces"`
}

type WorkspaceActivated struct {
	ID      uint64 `json:"id"`
	Focused bool   `json:"focused"`
}

type WindowsChanged struct {
	Windows []Window `json:"windows"`
}

type WindowOpenedOrChanged struct {
	Window Window `json:"window"`
}

type WindowClosed struct {
	ID uint64 `json:"id"`
}

type WindowFocusChanged struct {
	ID *uint64 `json:"id"`
}
