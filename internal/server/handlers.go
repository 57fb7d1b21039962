package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Keyruu/nirius/internal/client"
	"github.com/Keyruu/nirius/internal/engine"
)

// forward sends the command to the daemon and converts the result into an
// MCP tool result.
func (s *Server) forward(cmd engine.Command) (*mcp.CallToolResult, error) {
	res, err := client.Send(s.socket, cmd)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !res.OK {
		return mcp.NewToolResultError(res.Message), nil
	}
	msg := res.Message
	if msg == "" {
		msg = "ok"
	}
	return mcp.NewToolResultText(msg), nil
}

func (s *Server) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(engine.Command{
		Kind:  engine.KindFocus,
		AppID: optionalString(params, "app_id"),
		Title: optionalString(params, "title"),
	})
}

func (s *Server) handleFocusOrSpawn(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	command := stringSlice(params, "command")
	if len(command) == 0 {
		return mcp.NewToolResultError("command must be a non-empty array of strings"), nil
	}
	return s.forward(engine.Command{
		Kind:    engine.KindFocusOrSpawn,
		AppID:   optionalString(params, "app_id"),
		Title:   optionalString(params, "title"),
		Command: command,
	})
}

func (s *Server) handleMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(engine.Command{
		Kind:  engine.KindMoveToCurrentWorkspace,
		AppID: optionalString(params, "app_id"),
		Title: optionalString(params, "title"),
		Focus: boolParam(params, "focus"),
	})
}

func (s *Server) handleToggleFollowMode(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(engine.Command{Kind: engine.KindToggleFollowMode})
}

func (s *Server) handleToggleMark(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(engine.Command{
		Kind: engine.KindToggleMark,
		Mark: stringParam(params, "mark"),
	})
}

func (s *Server) handleFocusMarked(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(engine.Command{
		Kind: engine.KindFocusMarked,
		Mark: stringParam(params, "mark"),
	})
}

func (s *Server) handleListMarked(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	return s.forward(engine.Command{
		Kind: engine.KindListMarked,
		Mark: stringParam(params, "mark"),
		All:  boolParam(params, "all"),
	})
}

func (s *Server) handleScratchpadToggle(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(engine.Command{Kind: engine.KindScratchpadToggle})
}

func (s *Server) handleScratchpadShow(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.forward(engine.Command{Kind: engine.KindScratchpadShow})
}

func stringParam(params map[string]interface{}, key string) string {
	if v, ok := params[key].(string); ok {
		return v
	}
	return ""
}

// optionalString distinguishes an absent parameter from an empty one,
// matching the absent-filter semantics of the engine.
func optionalString(params map[string]interface{}, key string) *string {
	if v, ok := params[key].(string); ok {
		return &v
	}
	return nil
}

func boolParam(params map[string]interface{}, key string) bool {
	if v, ok := params[key].(bool); ok {
		return v
	}
	return false
}

func stringSlice(params map[string]interface{}, key string) []string {
	raw, ok := params[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil
		}
		out = append(out, s)
	}
	return out
}
