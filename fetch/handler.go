// Package fetch implements the fetch_url and fetch_urls tools: it launches a
// browser per call, hands each page to a content processor and guarantees
// the browser is released afterwards.
package fetch

import (
	"context"
	"log/slog"

	"github.com/fwojciec/webfetch"
	"github.com/google/uuid"
)

// DefaultConcurrency is the number of pages fetch_urls loads at once.
const DefaultConcurrency = 3

// Config is the process-wide configuration of a Handler.
type Config struct {
	// Debug runs browsers visibly and leaves them open after each call.
	// A call's own debug argument takes precedence.
	Debug bool

	// Concurrency bounds parallel page loads in FetchURLs.
	// Defaults to DefaultConcurrency.
	Concurrency int
}

// Handler serves fetch requests.
// Handler is safe for concurrent use; calls share no state.
type Handler struct {
	launcher  webfetch.Launcher
	processor webfetch.ContentProcessor
	limiter   webfetch.DomainLimiter
	config    Config
	logger    *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithDomainLimiter rate-limits FetchURLs page loads per host.
func WithDomainLimiter(l webfetch.DomainLimiter) Option {
	return func(h *Handler) {
		h.limiter = l
	}
}

// NewHandler creates a new Handler.
func NewHandler(launcher webfetch.Launcher, processor webfetch.ContentProcessor, config Config, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if config.Concurrency <= 0 {
		config.Concurrency = DefaultConcurrency
	}
	h := &Handler{
		launcher:  launcher,
		processor: processor,
		config:    config,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// FetchURL fetches one page and returns its content as a single text block.
// Invalid arguments are rejected before any browser is launched.
func (h *Handler) FetchURL(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
	req, err := webfetch.ParseFetchRequest(args)
	if err != nil {
		h.logger.Error("invalid fetch_url arguments", "err", err)
		return nil, err
	}

	debug := webfetch.ResolveDebug(req.Debug, h.config.Debug)
	logger := h.logger.With("request", uuid.NewString(), "url", req.URL)
	if debug {
		logger.Info("debug mode enabled")
	}

	browser, err := h.launcher.Launch(ctx, webfetch.LaunchOptions{
		Headless: !debug,
		Blocked:  req.Options.BlockedResources(),
	})
	if err != nil {
		return nil, err
	}

	var page webfetch.Page
	defer func() { release(logger, debug, browser, page) }()

	page, err = browser.NewPage(ctx)
	if err != nil {
		return nil, err
	}

	result, err := h.processor.Process(ctx, page, req.URL, req.Options)
	if err != nil {
		return nil, err
	}

	return webfetch.NewTextResult(result.Content), nil
}

// release closes pages and then the browser, unless debug is set, in which
// case everything is left open for inspection. Close errors are logged and
// never returned.
func release(logger *slog.Logger, debug bool, browser webfetch.Browser, pages ...webfetch.Page) {
	if debug {
		logger.Info("browser and pages kept open for debugging")
		return
	}

	for _, page := range pages {
		if page == nil {
			continue
		}
		if err := page.Close(); err != nil {
			logger.Error("failed to close page", "err", err)
		}
	}
	if browser != nil {
		if err := browser.Close(); err != nil {
			logger.Error("failed to close browser", "err", err)
		}
	}
}
