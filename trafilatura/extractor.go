// Package trafilatura implements webfetch.Extractor with go-trafilatura.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/webfetch"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements webfetch.Extractor at compile time.
var _ webfetch.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
		IncludeImages:   true,
	}
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &webfetch.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
