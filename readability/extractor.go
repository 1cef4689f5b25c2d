// Package readability implements webfetch.Extractor with go-readability,
// a port of Mozilla's Readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/webfetch"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements webfetch.Extractor at compile time.
var _ webfetch.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML, pageURL string) (*webfetch.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, webfetch.Errorf(webfetch.EINVALID, "empty HTML input")
	}

	var base *url.URL
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		base = u
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, err
	}

	return &webfetch.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
