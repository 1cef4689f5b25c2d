package mock

import (
	"context"

	"github.com/fwojciec/webfetch"
)

var (
	_ webfetch.ContentProcessor = (*ContentProcessor)(nil)
	_ webfetch.DomainLimiter    = (*DomainLimiter)(nil)
)

// ContentProcessor is a mock implementation of webfetch.ContentProcessor.
type ContentProcessor struct {
	ProcessFn func(ctx context.Context, page webfetch.Page, url string, opts webfetch.FetchOptions) (*webfetch.ProcessResult, error)
}

func (p *ContentProcessor) Process(ctx context.Context, page webfetch.Page, url string, opts webfetch.FetchOptions) (*webfetch.ProcessResult, error) {
	return p.ProcessFn(ctx, page, url, opts)
}

// DomainLimiter is a mock implementation of webfetch.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
