// Package goquery implements a selector-driven main-content extractor that
// knows where common documentation generators put the article body.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/webfetch"
)

// Ensure Extractor implements webfetch.Extractor at compile time.
var _ webfetch.Extractor = (*Extractor)(nil)

// boilerplateSelector matches elements dropped from extracted content.
const boilerplateSelector = "script, style, noscript, template, iframe, svg, nav, footer, aside, form, " +
	"[role='navigation'], [aria-hidden='true']"

// Extractor selects the main content container of a page using
// generator-aware CSS selectors. It is less clever than the statistical
// extractors but never gives up on a page that has a body.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the first non-empty content container with boilerplate
// elements removed.
func (e *Extractor) Extract(html, pageURL string) (*webfetch.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, webfetch.Errorf(webfetch.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, webfetch.Errorf(webfetch.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &webfetch.ExtractResult{Title: title(doc)}

	for _, selector := range containerSelectors(doc) {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		sel.Find(boilerplateSelector).Remove()
		if strings.TrimSpace(sel.Text()) == "" {
			continue
		}

		content, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, err
		}
		result.ContentHTML = content
		break
	}

	return result, nil
}

// title prefers the document title, then og:title, then the first h1.
func title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("head title").First().Text()); t != "" {
		return t
	}
	if t, ok := doc.Find("meta[property='og:title']").Attr("content"); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
