// Package htmltomarkdown implements webfetch.Converter with html-to-markdown.
package htmltomarkdown

import (
	"net/url"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/webfetch"
)

// Ensure Converter implements webfetch.Converter at compile time.
var _ webfetch.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Converter is safe for concurrent use.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown. Relative links and image
// sources become absolute when pageURL carries a host.
func (c *Converter) Convert(html, pageURL string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", webfetch.Errorf(webfetch.EINVALID, "empty HTML input")
	}

	var result string
	var err error
	if domain := domainOf(pageURL); domain != "" {
		result, err = c.conv.ConvertString(html, converter.WithDomain(domain))
	} else {
		result, err = c.conv.ConvertString(html)
	}
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result), nil
}

// domainOf returns scheme://host of rawURL, or "" if it has no host.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}
