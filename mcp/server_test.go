package mcp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/fetch"
	"github.com/fwojciec/webfetch/mcp"
	"github.com/fwojciec/webfetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure the fetch handler satisfies the server's dependency.
var _ mcp.ToolHandler = (*fetch.Handler)(nil)

// call sends one JSON-RPC message and returns the marshaled response.
func call(t *testing.T, s *mcp.Server, msg string) string {
	t.Helper()

	resp := s.MCPServer().HandleMessage(context.Background(), json.RawMessage(msg))
	b, err := json.Marshal(resp)
	require.NoError(t, err)
	return string(b)
}

func TestServer_ListTools(t *testing.T) {
	t.Parallel()

	s := mcp.NewServer(&mock.ToolHandler{}, "test", nil)
	out := call(t, s, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

	assert.Contains(t, out, `"name":"fetch_url"`)
	assert.Contains(t, out, `"name":"fetch_urls"`)
	assert.Contains(t, out, `"required":["url"]`)
	assert.Contains(t, out, `"required":["urls"]`)
	assert.Contains(t, out, `"enum":["load","domcontentloaded","networkidle","commit"]`)
	for _, arg := range []string{"timeout", "extractContent", "maxLength", "returnHtml", "waitForNavigation", "navigationTimeout", "disableMedia", "debug"} {
		assert.Contains(t, out, `"`+arg+`"`)
	}
}

func TestServer_CallTool(t *testing.T) {
	t.Parallel()

	t.Run("passes arguments to the handler and returns its text", func(t *testing.T) {
		t.Parallel()

		var gotArgs map[string]any
		handler := &mock.ToolHandler{
			FetchURLFn: func(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
				gotArgs = args
				return webfetch.NewTextResult("Title: Example Domain\nURL: https://example.com\nContent:\n\nhello"), nil
			},
		}

		s := mcp.NewServer(handler, "test", nil)
		out := call(t, s, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"fetch_url","arguments":{"url":"https://example.com","maxLength":100,"debug":false}}}`)

		assert.Equal(t, "https://example.com", gotArgs["url"])
		assert.Equal(t, float64(100), gotArgs["maxLength"])
		assert.Equal(t, false, gotArgs["debug"])
		assert.Contains(t, out, `"type":"text"`)
		assert.Contains(t, out, `Title: Example Domain\nURL: https://example.com\nContent:\n\nhello`)
		assert.NotContains(t, out, `"isError":true`)
	})

	t.Run("reports handler failures as tool errors", func(t *testing.T) {
		t.Parallel()

		handler := &mock.ToolHandler{
			FetchURLFn: func(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
				return nil, webfetch.Errorf(webfetch.EINVALID, "URL parameter is required")
			},
		}

		s := mcp.NewServer(handler, "test", nil)
		out := call(t, s, `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"fetch_url","arguments":{}}}`)

		assert.Contains(t, out, `"isError":true`)
		assert.Contains(t, out, "URL parameter is required")
	})

	t.Run("routes fetch_urls to the batch handler", func(t *testing.T) {
		t.Parallel()

		var gotURLs any
		handler := &mock.ToolHandler{
			FetchURLsFn: func(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
				gotURLs = args["urls"]
				return webfetch.NewTextResult("[webpage 1 begin]\nok\n[webpage 1 end]"), nil
			},
		}

		s := mcp.NewServer(handler, "test", nil)
		out := call(t, s, `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"fetch_urls","arguments":{"urls":["https://a.example","https://b.example"]}}}`)

		assert.Equal(t, []any{"https://a.example", "https://b.example"}, gotURLs)
		assert.Contains(t, out, "[webpage 1 begin]")
	})
}

func TestServer_Serve(t *testing.T) {
	t.Parallel()

	s := mcp.NewServer(&mock.ToolHandler{}, "1.2.3", nil)

	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26","capabilities":{},"clientInfo":{"name":"test","version":"0"}}}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	err := s.Serve(context.Background(), in, &out)

	if err != nil {
		assert.ErrorIs(t, err, io.EOF)
	}
	assert.Contains(t, out.String(), `"name":"webfetch"`)
	assert.Contains(t, out.String(), `"version":"1.2.3"`)
	assert.Contains(t, out.String(), `"tools"`)
}
