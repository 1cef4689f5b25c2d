package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/webfetch"
)

// Ensure LoggingExtractor implements webfetch.Extractor.
var _ webfetch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   webfetch.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The name identifies
// the extractor in log output.
func NewLoggingExtractor(next webfetch.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html, pageURL string) (result *webfetch.ExtractResult, err error) {
	defer func(begin time.Time) {
		var n int
		if result != nil {
			n = len(result.ContentHTML)
		}
		e.logger.Debug("content extraction",
			"extractor", e.name,
			"url", pageURL,
			"bytes", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html, pageURL)
}
