package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch/fetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Handler *fetch.Handler
	Version string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug       bool    `help:"Show the browser window and keep it open after each fetch" env:"WEBFETCH_DEBUG"`
	Browser     string  `help:"Path to the Chrome or Chromium binary" env:"WEBFETCH_BROWSER"`
	UserAgent   string  `name:"user-agent" help:"User agent sent with every request" env:"WEBFETCH_USER_AGENT"`
	LogLevel    string  `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)" env:"WEBFETCH_LOG_LEVEL"`
	Concurrency int     `short:"c" default:"3" help:"Pages loaded at once by fetch_urls"`
	RateLimit   float64 `name:"rate-limit" default:"1" help:"Page loads per second per host in fetch_urls"`

	Serve ServeCmd `cmd:"" default:"withargs" help:"Serve fetch_url and fetch_urls over MCP on stdin/stdout"`
	Fetch FetchCmd `cmd:"" help:"Fetch one or more pages and print their content"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs              []string      `arg:"" name:"url" help:"URLs to fetch"`
	Timeout           time.Duration `short:"t" default:"30s" help:"Page loading timeout"`
	WaitUntil         string        `name:"wait-until" default:"load" enum:"load,domcontentloaded,networkidle,commit" help:"When navigation is considered complete"`
	Raw               bool          `help:"Return the whole page instead of the extracted main content"`
	MaxLength         int           `name:"max-length" help:"Maximum length of returned content in characters (0 for no limit)"`
	HTML              bool          `name:"html" help:"Return HTML instead of Markdown"`
	WaitForNavigation bool          `name:"wait-for-navigation" help:"Wait for an additional navigation after the initial load"`
	NavigationTimeout time.Duration `name:"navigation-timeout" default:"10s" help:"Maximum wait for the additional navigation"`
	Media             bool          `help:"Load images, stylesheets, fonts and media"`
}
