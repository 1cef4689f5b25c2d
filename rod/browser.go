package rod

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fwojciec/webfetch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements webfetch.Browser at compile time.
var _ webfetch.Browser = (*Browser)(nil)

// Browser is a Chrome process started by Launcher.
type Browser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	router    *rod.HijackRouter
	userAgent string

	closeOnce sync.Once
	closeErr  error
}

// NewPage opens a blank page with the configured user agent.
func (b *Browser) NewPage(ctx context.Context) (webfetch.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Not bound to ctx: the page must stay closable after ctx is canceled.
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}

	if b.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: b.userAgent}); err != nil {
			_ = page.Close()
			return nil, fmt.Errorf("setting user agent: %w", err)
		}
	}

	return &Page{page: page}, nil
}

// Close stops request interception, closes the browser and kills the
// launcher process. Close is safe to call multiple times.
func (b *Browser) Close() error {
	b.closeOnce.Do(func() {
		var errs []error
		if b.router != nil {
			errs = append(errs, b.router.Stop())
		}
		errs = append(errs, b.browser.Close())
		b.launcher.Kill()
		b.closeErr = errors.Join(errs...)
	})
	return b.closeErr
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	return b.launcher.PID()
}
