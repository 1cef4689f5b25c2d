package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch"
)

// Ensure LoggingProcessor implements webfetch.ContentProcessor.
var _ webfetch.ContentProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a ContentProcessor with per-page logging.
type LoggingProcessor struct {
	next   webfetch.ContentProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next webfetch.ContentProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs the operation.
func (p *LoggingProcessor) Process(ctx context.Context, page webfetch.Page, url string, opts webfetch.FetchOptions) (result *webfetch.ProcessResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"waitUntil", opts.WaitUntil,
			"duration", time.Since(begin),
		}
		if result != nil {
			attrs = append(attrs, "final", result.URL, "bytes", len(result.Body))
		}
		if err != nil {
			attrs = append(attrs, "code", webfetch.ErrorCode(err), "err", err)
		}
		p.logger.Info("page fetch", attrs...)
	}(time.Now())
	return p.next.Process(ctx, page, url, opts)
}
