// Package server exposes nirius commands as MCP tools. Tool calls are
// forwarded to the running niriusd daemon over the control socket, so the
// daemon stays the single place command semantics live.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Keyruu/nirius/internal/version"
)

// Server wraps the MCP server with the daemon socket path.
type Server struct {
	socket string
	mcp    *mcpserver.MCPServer
}

// New creates an MCP server with all nirius tools registered.
func New(socketPath string) *Server {
	s := &Server{socket: socketPath}
	s.mcp = mcpserver.NewMCPServer("nirius", version.Version)
	s.registerTools()
	return s
}

// ServeStdio serves MCP over stdin/stdout until the client disconnects.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Focus the next window matching the filters; repeated calls cycle through all matches"),
			mcp.WithString("app_id", mcp.Description("Regexp matched against window app-ids")),
			mcp.WithString("title", mcp.Description("Regexp matched against window titles")),
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_or_spawn",
			mcp.WithDescription("Focus a matching window, or spawn the command line if none matches"),
			mcp.WithString("app_id", mcp.Description("Regexp matched against window app-ids")),
			mcp.WithString("title", mcp.Description("Regexp matched against window titles")),
			mcp.WithArray("command", mcp.Description("Command line to spawn as fallback"), mcp.Required()),
		),
		s.handleFocusOrSpawn,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_to_current_workspace",
			mcp.WithDescription("Move the lowest-id matching window to the focused workspace"),
			mcp.WithString("app_id", mcp.Description("Regexp matched against window app-ids")),
			mcp.WithString("title", mcp.Description("Regexp matched against window titles")),
			mcp.WithBoolean("focus", mcp.Description("Focus the window after moving it")),
		),
		s.handleMove,
	)

	s.mcp.AddTool(
		mcp.NewTool("toggle_follow_mode",
			mcp.WithDescription("Toggle follow-mode for the focused window"),
		),
		s.handleToggleFollowMode,
	)

	s.mcp.AddTool(
		mcp.NewTool("toggle_mark",
			mcp.WithDescription("Add the focused window to a mark, or remove it again"),
			mcp.WithString("mark", mcp.Description("Mark name (defaults to the default mark)")),
		),
		s.handleToggleMark,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus_marked",
			mcp.WithDescription("Cycle focus through the windows of a mark"),
			mcp.WithString("mark", mcp.Description("Mark name (defaults to the default mark)")),
		),
		s.handleFocusMarked,
	)

	s.mcp.AddTool(
		mcp.NewTool("list_marked",
			mcp.WithDescription("List the windows of a mark, or of every mark"),
			mcp.WithString("mark", mcp.Description("Mark name (defaults to the default mark)")),
			mcp.WithBoolean("all", mcp.Description("List every mark with its windows")),
		),
		s.handleListMarked,
	)

	s.mcp.AddTool(
		mcp.NewTool("scratchpad_toggle",
			mcp.WithDescription("Park the focused window in the scratchpad, or release it"),
		),
		s.handleScratchpadToggle,
	)

	s.mcp.AddTool(
		mcp.NewTool("scratchpad_show",
			mcp.WithDescription("Bring the oldest scratchpad window to the focused workspace"),
		),
		s.handleScratchpadShow,
	)
}
