// Package mcp exposes the fetch tools over the Model Context Protocol using
// mark3labs/mcp-go.
package mcp

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/webfetch"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is reported to clients during initialization.
const ServerName = "webfetch"

// ToolHandler serves tool calls with loosely-typed arguments.
type ToolHandler interface {
	FetchURL(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error)
	FetchURLs(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error)
}

// Server is an MCP server offering fetch_url and fetch_urls.
type Server struct {
	mcp     *server.MCPServer
	handler ToolHandler
	logger  *slog.Logger
}

// NewServer creates a new Server and registers its tools.
func NewServer(handler ToolHandler, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		mcp: server.NewMCPServer(ServerName, version,
			server.WithToolCapabilities(false),
			server.WithLogging(),
		),
		handler: handler,
		logger:  logger,
	}
	s.mcp.AddTool(fetchURLTool(), s.handleFetchURL)
	s.mcp.AddTool(fetchURLsTool(), s.handleFetchURLs)
	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve reads JSON-RPC messages from in and writes responses to out until
// ctx is canceled or in is closed.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelError))
	s.logger.Info("serving MCP over stdio", "name", ServerName)
	return stdio.Listen(ctx, in, out)
}

func (s *Server) handleFetchURL(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.handler.FetchURL(ctx, req.GetArguments()))
}

func (s *Server) handleFetchURLs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return toolResult(s.handler.FetchURLs(ctx, req.GetArguments()))
}

// toolResult converts a handler outcome into a protocol result. Failures are
// reported as tool errors so the client sees the message.
func toolResult(result *webfetch.ToolResult, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(webfetch.ErrorText(err)), nil
	}
	out := &mcp.CallToolResult{}
	for _, block := range result.Content {
		out.Content = append(out.Content, mcp.NewTextContent(block.Text))
	}
	return out, nil
}
