package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// layout describes a documentation site generator: how to recognise its
// pages and where it renders the article body.
type layout struct {
	// generator is matched against the lowercased meta generator tag.
	generator string

	// markers are selectors that only occur on the generator's pages.
	markers []string

	// containers hold the article body, most specific first.
	containers []string
}

// layouts are checked in order. VitePress precedes VuePress because its
// pages can carry VuePress class names.
var layouts = []layout{
	{
		generator:  "docusaurus",
		markers:    []string{"#__docusaurus_skipToContent_fallback", ".theme-doc-sidebar-container", "html[data-rh][data-theme]"},
		containers: []string{".theme-doc-markdown", "article"},
	},
	{
		generator:  "mkdocs",
		markers:    []string{"[data-md-color-scheme]", "[data-md-component]", ".md-nav--primary"},
		containers: []string{".md-content__inner", ".md-content"},
	},
	{
		generator:  "sphinx",
		markers:    []string{".toctree-wrapper", ".wy-nav-side", ".wy-menu-vertical", ".sphinxsidebar"},
		containers: []string{"[role='main']", ".document .body", ".body"},
	},
	{
		generator:  "vitepress",
		markers:    []string{"#VPContent", ".VPDoc", ".VPDocAsideOutline"},
		containers: []string{".vp-doc", ".VPDoc"},
	},
	{
		generator:  "vuepress",
		markers:    []string{".theme-default-content", ".sidebar-links", ".vuepress-navbar"},
		containers: []string{".theme-default-content"},
	},
	{
		generator: "gitbook",
		markers: []string{
			"[data-testid='space.sidebar']",
			"[data-testid='page.desktopTableOfContents']",
			"html.circular-corners.theme-clean",
			"html.circular-corners.tint",
			"html.theme-clean.tint",
		},
		containers: []string{"main"},
	},
	{
		generator:  "nextra",
		markers:    []string{".nextra-navbar", ".nextra-sidebar", ".nextra-toc"},
		containers: []string{"article main", "article"},
	},
}

// genericContainers apply to every page after the layout-specific ones.
var genericContainers = []string{
	"main",
	"article",
	"[role='main']",
	"#content",
	".content",
	"body",
}

// containerSelectors returns the selectors to try, in order, when looking
// for the main content of doc. A generator named in the meta tag wins over
// markers found in the markup.
func containerSelectors(doc *goquery.Document) []string {
	var selectors []string
	if l, ok := detectLayout(doc); ok {
		selectors = append(selectors, l.containers...)
	}
	return append(selectors, genericContainers...)
}

func detectLayout(doc *goquery.Document) (layout, bool) {
	if generator, ok := doc.Find("meta[name='generator']").Last().Attr("content"); ok {
		generator = strings.ToLower(generator)
		for _, l := range layouts {
			if strings.Contains(generator, l.generator) {
				return l, true
			}
		}
	}

	for _, l := range layouts {
		for _, marker := range l.markers {
			if doc.Find(marker).Length() > 0 {
				return l, true
			}
		}
	}
	return layout{}, false
}
