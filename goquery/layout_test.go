package goquery_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/webfetch/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docsPage wraps a generator's markup in a <main> that also holds a
// sidebar, so only the generator's own container isolates the article.
func docsPage(htmlAttrs, head, body string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html%s>
<head><title>Docs</title>%s</head>
<body>
<main>
<div class="sidebar-menu">Sidebar entry</div>
%s
</main>
</body>
</html>`, htmlAttrs, head, body)
}

func TestExtractor_Extract_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
	}{
		{
			name: "docusaurus skip link",
			html: docsPage("", "", `<a id="__docusaurus_skipToContent_fallback"></a>
<div class="theme-doc-markdown"><p>Article text</p></div>`),
		},
		{
			name: "docusaurus head attributes",
			html: docsPage(` data-theme="light" data-rh="lang,dir"`, "", `<article><p>Article text</p></article>`),
		},
		{
			name: "mkdocs material palette",
			html: docsPage("", "", `<div data-md-color-scheme="default"></div>
<div class="md-content"><div class="md-content__inner"><p>Article text</p></div></div>`),
		},
		{
			name: "sphinx read the docs theme",
			html: docsPage("", "", `<div class="wy-nav-side"></div>
<div class="document"><div class="body"><p>Article text</p></div></div>`),
		},
		{
			name: "sphinx generator tag",
			html: docsPage("", `<meta name="generator" content="Sphinx 7.2.6">`, `<div class="body"><p>Article text</p></div>`),
		},
		{
			name: "vitepress content root",
			html: docsPage("", "", `<div id="VPContent"><div class="vp-doc"><p>Article text</p></div></div>`),
		},
		{
			name: "vuepress default theme",
			html: docsPage("", "", `<ul class="sidebar-links"></ul>
<div class="theme-default-content"><p>Article text</p></div>`),
		},
		{
			name: "nextra table of contents",
			html: docsPage("", "", `<nav class="nextra-toc"></nav>
<article><p>Article text</p></article>`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := goquery.NewExtractor().Extract(tt.html, "https://docs.example.com/guide")

			require.NoError(t, err)
			assert.Contains(t, result.ContentHTML, "Article text")
			assert.NotContains(t, result.ContentHTML, "Sidebar entry")
		})
	}

	t.Run("gitbook html classes select main", func(t *testing.T) {
		t.Parallel()

		html := `<html class="circular-corners theme-clean"><head><title>Space</title></head>
<body><div class="sidebar-menu">Sidebar entry</div><main><p>Article text</p></main></body></html>`

		result, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Article text")
		assert.NotContains(t, result.ContentHTML, "Sidebar entry")
	})

	t.Run("generator tag wins over markup markers", func(t *testing.T) {
		t.Parallel()

		// Docusaurus markers would pick the article, which also holds the
		// version banner.
		html := docsPage("", `<meta name="generator" content="mkdocs-1.5.3, mkdocs-material-9.4.0">`,
			`<div class="theme-doc-sidebar-container"></div>
<article><div class="banner">Version banner</div>
<div class="md-content__inner"><p>Article text</p></div></article>`)

		result, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Article text")
		assert.NotContains(t, result.ContentHTML, "Version banner")
	})

	t.Run("falls back to generic containers when the layout container is empty", func(t *testing.T) {
		t.Parallel()

		html := docsPage("", `<meta name="generator" content="VitePress v1.0.0">`,
			`<div class="vp-doc"><script>hydrate()</script></div><p>Article text</p>`)

		result, err := goquery.NewExtractor().Extract(html, "")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Article text")
		assert.Contains(t, result.ContentHTML, "Sidebar entry")
	})

	t.Run("unknown sites use the generic containers", func(t *testing.T) {
		t.Parallel()

		result, err := goquery.NewExtractor().Extract(docsPage("", "", `<p>Article text</p>`), "")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<main>")
		assert.Contains(t, result.ContentHTML, "Sidebar entry")
	})
}
