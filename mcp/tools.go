package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

var waitUntilValues = []string{"load", "domcontentloaded", "networkidle", "commit"}

func fetchURLTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Retrieve web page content from a specified URL"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to fetch"),
		),
	}
	return mcp.NewTool("fetch_url", append(opts, fetchOptions()...)...)
}

func fetchURLsTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Retrieve web page content from multiple URLs in one browser"),
		mcp.WithArray("urls",
			mcp.Required(),
			mcp.Description("Array of URLs to fetch"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	}
	return mcp.NewTool("fetch_urls", append(opts, fetchOptions()...)...)
}

// fetchOptions describes the arguments shared by both tools.
func fetchOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber("timeout",
			mcp.Description("Page loading timeout in milliseconds, default is 30000 (30 seconds)"),
		),
		mcp.WithString("waitUntil",
			mcp.Description("Specifies when navigation is considered complete, options: 'load', 'domcontentloaded', 'networkidle', 'commit', default is 'load'"),
			mcp.Enum(waitUntilValues...),
		),
		mcp.WithBoolean("extractContent",
			mcp.Description("Whether to intelligently extract the main content, default is true"),
		),
		mcp.WithNumber("maxLength",
			mcp.Description("Maximum length of returned content (in characters), default is no limit"),
		),
		mcp.WithBoolean("returnHtml",
			mcp.Description("Whether to return HTML content instead of Markdown, default is false"),
		),
		mcp.WithBoolean("waitForNavigation",
			mcp.Description("Whether to wait for additional navigation after initial page load (useful for sites with anti-bot verification), default is false"),
		),
		mcp.WithNumber("navigationTimeout",
			mcp.Description("Maximum time to wait for additional navigation in milliseconds, default is 10000 (10 seconds)"),
		),
		mcp.WithBoolean("disableMedia",
			mcp.Description("Whether to disable media resources (images, stylesheets, fonts, media), default is true"),
		),
		mcp.WithBoolean("debug",
			mcp.Description("Whether to enable debug mode (showing browser window), overrides the --debug command line flag if specified"),
		),
	}
}
