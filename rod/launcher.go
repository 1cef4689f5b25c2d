// Package rod provides a Chrome-backed implementation of webfetch.Launcher
// built on go-rod.
package rod

import (
	"context"
	"fmt"

	"github.com/fwojciec/webfetch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
)

// DefaultUserAgent is sent by every page unless overridden with WithUserAgent.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Launcher implements webfetch.Launcher at compile time.
var _ webfetch.Launcher = (*Launcher)(nil)

// Launcher starts a fresh Chrome process for every Launch call.
// Launcher is safe for concurrent use by multiple goroutines.
type Launcher struct {
	bin       string
	userAgent string
}

// LauncherOption configures a Launcher.
type LauncherOption func(*Launcher)

// WithBin sets the path to the Chrome or Chromium binary.
// By default rod looks the browser up on the system (or downloads one).
func WithBin(path string) LauncherOption {
	return func(l *Launcher) {
		l.bin = path
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) LauncherOption {
	return func(l *Launcher) {
		l.userAgent = ua
	}
}

// NewLauncher creates a new Launcher.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Launch starts a browser, headless or visible per opts, and installs the
// request blocking rule when opts.Blocked is not empty.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func (l *Launcher) Launch(ctx context.Context, opts webfetch.LaunchOptions) (webfetch.Browser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(!SurvivesExit(opts)).
		Headless(opts.Headless)
	if l.bin != "" {
		lnchr = lnchr.Bin(l.bin)
	}

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	b := &Browser{
		browser:   browser,
		launcher:  lnchr,
		userAgent: l.userAgent,
	}

	if err := browser.IgnoreCertErrors(true); err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("ignoring certificate errors: %w", err)
	}

	if len(opts.Blocked) > 0 {
		router, err := blockResources(browser, opts.Blocked)
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("installing request filter: %w", err)
		}
		b.router = router
	}

	return b, nil
}

// SurvivesExit reports whether a browser launched with opts is left running
// when this process exits. Visible browsers are, so a debugging session
// outlives a one-shot fetch; headless ones are killed with the process.
func SurvivesExit(opts webfetch.LaunchOptions) bool {
	return !opts.Headless
}
