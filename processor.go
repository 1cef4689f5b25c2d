package webfetch

import "context"

// ProcessResult is the outcome of loading and processing one page.
type ProcessResult struct {
	Title string
	URL   string

	// Body is the extracted, converted and truncated page content.
	Body string

	// Content is the formatted text returned to the caller: Body
	// preceded by the title and URL.
	Content string
}

// ContentProcessor loads a page and turns it into text.
type ContentProcessor interface {
	// Process navigates page to url according to opts and returns the
	// extracted content. Navigation failures are returned as errors.
	Process(ctx context.Context, page Page, url string, opts FetchOptions) (*ProcessResult, error)
}

// DomainLimiter rate-limits requests per host.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	Wait(ctx context.Context, domain string) error
}
