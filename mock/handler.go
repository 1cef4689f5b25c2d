package mock

import (
	"context"

	"github.com/fwojciec/webfetch"
)

// ToolHandler is a mock implementation of mcp.ToolHandler.
type ToolHandler struct {
	FetchURLFn  func(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error)
	FetchURLsFn func(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error)
}

func (h *ToolHandler) FetchURL(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
	return h.FetchURLFn(ctx, args)
}

func (h *ToolHandler) FetchURLs(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
	return h.FetchURLsFn(ctx, args)
}
