package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewBoundcheckMCPServer creates a new MCP server with all boundcheck tools
// registered. The projectPath is the root directory of the project to
// validate.
func NewBoundcheckMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"boundcheck",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, projectPath)

	return s
}
