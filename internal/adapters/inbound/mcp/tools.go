package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/boundcheck/boundcheck/internal/adapters/outbound/config"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/gitinfo"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/scanner"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/tsconfig"
	"github.com/boundcheck/boundcheck/internal/application"
	"github.com/boundcheck/boundcheck/internal/domain"
	"github.com/boundcheck/boundcheck/internal/domain/rules"
)

// registerTools registers all boundcheck MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("boundcheck_validate",
			mcplib.WithDescription("Run all architecture rules and return the full validation report as JSON"),
			mcplib.WithBoolean("lenient", mcplib.Description("Downgrade missing public-API exports to warnings")),
		),
		handleValidate(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("boundcheck_graph",
			mcplib.WithDescription("Return the domain dependency graph (adjacency list and cycles) as JSON"),
		),
		handleGraph(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("boundcheck_domains",
			mcplib.WithDescription("List the bounded contexts discovered under the domains root"),
		),
		handleDomains(projectPath),
	)
}

func newService() *application.ValidateService {
	return application.NewValidateService(
		scanner.New(),
		config.New(),
		tsconfig.New(),
		gitinfo.New(),
		zap.NewNop(),
	)
}

func handleValidate(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		strictness := domain.Strictness("")
		if request.GetBool("lenient", false) {
			strictness = domain.StrictnessLenient
		}

		report, err := newService().Validate(projectPath, strictness)
		if err != nil {
			return errorResult(fmt.Sprintf("validation failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleGraph(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		tree, _, err := newService().BuildTree(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}

		graph := rules.BuildDomainGraph(tree)
		return jsonResult(map[string]interface{}{
			"adjacency": graph.Adjacency,
			"edges":     graph.EdgeCount(),
			"cycles":    graph.DetectCycles(),
		})
	}
}

func handleDomains(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		tree, _, err := newService().BuildTree(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("scan failed: %v", err)), nil
		}
		return jsonResult(tree.Domains)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
