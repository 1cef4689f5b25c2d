// Package webfetch fetches web pages through a headless browser and returns
// their content as Markdown or HTML, exposed as the fetch_url tool.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, trafilatura/, htmltomarkdown/).
package webfetch
