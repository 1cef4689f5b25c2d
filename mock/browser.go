package mock

import (
	"context"
	"time"

	"github.com/fwojciec/webfetch"
)

var (
	_ webfetch.Launcher = (*Launcher)(nil)
	_ webfetch.Browser  = (*Browser)(nil)
	_ webfetch.Page     = (*Page)(nil)
)

// Launcher is a mock implementation of webfetch.Launcher.
type Launcher struct {
	LaunchFn func(ctx context.Context, opts webfetch.LaunchOptions) (webfetch.Browser, error)
}

func (l *Launcher) Launch(ctx context.Context, opts webfetch.LaunchOptions) (webfetch.Browser, error) {
	return l.LaunchFn(ctx, opts)
}

// Browser is a mock implementation of webfetch.Browser.
type Browser struct {
	NewPageFn func(ctx context.Context) (webfetch.Page, error)
	CloseFn   func() error
}

func (b *Browser) NewPage(ctx context.Context) (webfetch.Page, error) {
	return b.NewPageFn(ctx)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

// Page is a mock implementation of webfetch.Page.
type Page struct {
	NavigateFn       func(ctx context.Context, url string, until webfetch.WaitUntil, timeout time.Duration) error
	WaitNavigationFn func(ctx context.Context, until webfetch.WaitUntil, timeout time.Duration) error
	HTMLFn           func(ctx context.Context) (string, error)
	InfoFn           func(ctx context.Context) (*webfetch.PageInfo, error)
	CloseFn          func() error
}

func (p *Page) Navigate(ctx context.Context, url string, until webfetch.WaitUntil, timeout time.Duration) error {
	return p.NavigateFn(ctx, url, until, timeout)
}

func (p *Page) WaitNavigation(ctx context.Context, until webfetch.WaitUntil, timeout time.Duration) error {
	return p.WaitNavigationFn(ctx, until, timeout)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

func (p *Page) Info(ctx context.Context) (*webfetch.PageInfo, error) {
	return p.InfoFn(ctx)
}

func (p *Page) Close() error {
	return p.CloseFn()
}
