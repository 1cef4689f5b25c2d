package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/webfetch"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// batchResult holds the outcome of fetching a single URL.
type batchResult struct {
	url    string
	result *webfetch.ProcessResult
	err    error
}

// FetchURLs fetches several pages with a single browser and returns their
// contents concatenated into one text block. A URL that fails contributes
// its error message instead of content; the call itself only fails on
// invalid arguments, browser launch failure or cancellation.
func (h *Handler) FetchURLs(ctx context.Context, args map[string]any) (*webfetch.ToolResult, error) {
	req, err := webfetch.ParseBatchRequest(args)
	if err != nil {
		h.logger.Error("invalid fetch_urls arguments", "err", err)
		return nil, err
	}

	debug := webfetch.ResolveDebug(req.Debug, h.config.Debug)
	logger := h.logger.With("request", uuid.NewString(), "urls", len(req.URLs))
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

	var mu sync.Mutex
	pages := make([]webfetch.Page, 0, len(req.URLs))
	defer func() { release(logger, debug, browser, pages...) }()

	results := make([]batchResult, len(req.URLs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.config.Concurrency)
	for i, u := range req.URLs {
		g.Go(func() error {
			page, result, err := h.fetchOne(gctx, browser, u, req.Options)
			if page != nil {
				mu.Lock()
				pages = append(pages, page)
				mu.Unlock()
			}
			if err != nil {
				logger.Warn("fetch failed", "url", u, "err", err)
			}
			results[i] = batchResult{url: u, result: result, err: err}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return webfetch.NewTextResult(formatBatch(results)), nil
}

// fetchOne opens a page and processes rawURL. The page is returned even
// when processing fails so the caller can release it.
func (h *Handler) fetchOne(ctx context.Context, browser webfetch.Browser, rawURL string, opts webfetch.FetchOptions) (webfetch.Page, *webfetch.ProcessResult, error) {
	if h.limiter != nil {
		if err := h.limiter.Wait(ctx, hostOf(rawURL)); err != nil {
			return nil, nil, err
		}
	}

	page, err := browser.NewPage(ctx)
	if err != nil {
		return nil, nil, err
	}

	result, err := h.processor.Process(ctx, page, rawURL, opts)
	if err != nil {
		return page, nil, err
	}
	return page, result, nil
}

// formatBatch concatenates results in request order. Pages whose content
// is identical to an earlier page reference it instead of repeating it.
func formatBatch(results []batchResult) string {
	seen := make(map[uint64]int)
	var b strings.Builder
	for i, r := range results {
		n := i + 1
		fmt.Fprintf(&b, "[webpage %d begin]\n", n)
		if r.err != nil {
			b.WriteString(FormatContent("Error", r.url, "<error>Failed to retrieve content: "+webfetch.ErrorText(r.err)+"</error>"))
		} else {
			h := xxhash.Sum64String(r.result.Body)
			if first, ok := seen[h]; ok {
				b.WriteString(FormatContent(r.result.Title, r.result.URL, fmt.Sprintf("(same content as webpage %d)", first)))
			} else {
				seen[h] = n
				b.WriteString(r.result.Content)
			}
		}
		fmt.Fprintf(&b, "\n[webpage %d end]", n)
		if i < len(results)-1 {
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// hostOf returns the host of rawURL, or rawURL itself if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
