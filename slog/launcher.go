package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch"
)

// Ensure LoggingLauncher implements webfetch.Launcher.
var _ webfetch.Launcher = (*LoggingLauncher)(nil)

// LoggingLauncher wraps a Launcher with logging of browser lifetimes.
type LoggingLauncher struct {
	next   webfetch.Launcher
	logger *slog.Logger
}

// NewLoggingLauncher creates a new LoggingLauncher.
func NewLoggingLauncher(next webfetch.Launcher, logger *slog.Logger) *LoggingLauncher {
	return &LoggingLauncher{next: next, logger: logger}
}

// Launch delegates to the wrapped launcher and logs the operation. The
// returned browser logs its own shutdown.
func (l *LoggingLauncher) Launch(ctx context.Context, opts webfetch.LaunchOptions) (browser webfetch.Browser, err error) {
	defer func(begin time.Time) {
		l.logger.Info("browser launch",
			"headless", opts.Headless,
			"blocked", len(opts.Blocked),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())

	browser, err = l.next.Launch(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &loggingBrowser{next: browser, logger: l.logger, started: time.Now()}, nil
}

type loggingBrowser struct {
	next    webfetch.Browser
	logger  *slog.Logger
	started time.Time
}

func (b *loggingBrowser) NewPage(ctx context.Context) (webfetch.Page, error) {
	page, err := b.next.NewPage(ctx)
	if err != nil {
		b.logger.Warn("page open", "err", err)
	}
	return page, err
}

func (b *loggingBrowser) Close() error {
	err := b.next.Close()
	b.logger.Info("browser close",
		"lifetime", time.Since(b.started),
		"err", err,
	)
	return err
}
