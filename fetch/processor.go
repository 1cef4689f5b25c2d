package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fwojciec/webfetch"
)

// Ensure Processor implements webfetch.ContentProcessor at compile time.
var _ webfetch.ContentProcessor = (*Processor)(nil)

// Processor loads a page and turns its rendered HTML into text.
type Processor struct {
	// Extractors are tried in order when content extraction is enabled.
	// The first one returning non-empty content wins; if none does, the
	// full page HTML is used.
	Extractors []webfetch.Extractor
	Converter  webfetch.Converter
	Logger     *slog.Logger
}

// Process navigates page to url and returns the processed content.
func (p *Processor) Process(ctx context.Context, page webfetch.Page, url string, opts webfetch.FetchOptions) (*webfetch.ProcessResult, error) {
	logger := p.logger().With("url", url)

	logger.Debug("navigating", "waitUntil", opts.WaitUntil, "timeout", opts.Timeout)
	navErr := page.Navigate(ctx, url, opts.WaitUntil, opts.Timeout)
	if navErr != nil {
		if webfetch.ErrorCode(navErr) != webfetch.ETIMEOUT {
			return nil, navErr
		}
		logger.Warn("navigation timed out, retrieving content anyway", "err", navErr)
	}

	if opts.WaitForNavigation {
		logger.Debug("waiting for additional navigation", "timeout", opts.NavigationTimeout)
		if err := page.WaitNavigation(ctx, opts.WaitUntil, opts.NavigationTimeout); err != nil {
			if webfetch.ErrorCode(err) != webfetch.ETIMEOUT {
				return nil, err
			}
			logger.Info("no additional navigation, continuing", "err", err)
		}
	}

	info, err := page.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading page info: %w", err)
	}
	finalURL := info.URL
	if finalURL == "" {
		finalURL = url
	}

	html, err := page.HTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading page content: %w", err)
	}
	if strings.TrimSpace(html) == "" {
		if navErr != nil {
			return nil, navErr
		}
		return nil, webfetch.Errorf(webfetch.EINTERNAL, "page %s returned no content", url)
	}

	title := strings.TrimSpace(info.Title)
	content := html
	if opts.ExtractContent {
		extracted, extractedTitle := p.extract(logger, html, finalURL)
		content = extracted
		if title == "" {
			title = extractedTitle
		}
	}

	if !opts.ReturnHTML {
		if content, err = p.Converter.Convert(content, finalURL); err != nil {
			return nil, fmt.Errorf("converting to markdown: %w", err)
		}
	}

	content = Truncate(content, opts.MaxLength)

	return &webfetch.ProcessResult{
		Title:   title,
		URL:     finalURL,
		Body:    content,
		Content: FormatContent(title, finalURL, content),
	}, nil
}

// extract returns the main content and title found by the first successful
// extractor, or the full HTML when every extractor fails.
func (p *Processor) extract(logger *slog.Logger, html, pageURL string) (content, title string) {
	for _, e := range p.Extractors {
		result, err := e.Extract(html, pageURL)
		if err != nil {
			logger.Debug("extractor failed", "extractor", fmt.Sprintf("%T", e), "err", err)
			continue
		}
		if title == "" {
			title = strings.TrimSpace(result.Title)
		}
		if strings.TrimSpace(result.ContentHTML) != "" {
			return result.ContentHTML, title
		}
	}
	logger.Info("could not extract main content, using full page")
	return html, title
}

func (p *Processor) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// FormatContent renders the text returned to the caller.
func FormatContent(title, url, content string) string {
	return fmt.Sprintf("Title: %s\nURL: %s\nContent:\n\n%s", title, url, content)
}

// Truncate cuts s to at most max characters. A max of zero or less
// means no limit.
func Truncate(s string, max int) string {
	if max <= 0 {
		return s
	}
	// Byte length bounds rune count, so short strings skip the conversion.
	if len(s) <= max {
		return s
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
