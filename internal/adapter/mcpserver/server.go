// Package mcpserver exposes registered tools over the Model Context
// Protocol on stdio. Stdout carries the protocol stream, so nothing
// else in the process may write to it.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"trivia-research/internal/domain"
)

// Server wraps an MCP stdio server around a set of domain tools.
type Server struct {
	mcp    *server.MCPServer
	logger *slog.Logger
}

// New builds a server and registers every tool with its raw JSON schema.
func New(name, version string, tools []domain.Tool, logger *slog.Logger) *Server {
	s := server.NewMCPServer(name, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	for _, t := range tools {
		schema := t.Schema()
		s.AddTool(
			mcp.NewToolWithRawSchema(schema.Name, schema.Description, schema.Parameters),
			toolHandler(t, logger),
		)
		logger.Debug("tool registered", "tool", schema.Name)
	}

	return &Server{mcp: s, logger: logger}
}

// toolHandler adapts a domain.Tool to the MCP handler signature.
// Tool-level failures become error results on the wire, not protocol
// errors, so the client sees the message.
func toolHandler(t domain.Tool, logger *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode arguments: %v", err)), nil
		}

		result, err := t.Execute(ctx, raw)
		if err != nil {
			logger.Error("tool execution failed", "tool", t.Name(), "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		if result.IsError {
			return mcp.NewToolResultError(result.Content), nil
		}
		return mcp.NewToolResultText(result.Content), nil
	}
}

// ServeStdio blocks serving the protocol until stdin closes.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP on stdio")
	return server.ServeStdio(s.mcp)
}
