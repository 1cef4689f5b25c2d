package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements webfetch.Extractor at compile time.
var _ webfetch.Extractor = (*trafilatura.Extractor)(nil)

// articlePage is a page with enough prose for trafilatura to accept its
// own extraction, surrounded by site chrome.
const articlePage = `<!DOCTYPE html>
<html>
<head>
<title>Installing the CLI | Example Docs</title>
<meta property="og:title" content="Installing the CLI">
</head>
<body>
<nav class="site-nav"><a href="/">Home</a> <a href="/blog">Blog</a> <a href="/pricing">Pricing</a></nav>
<article>
<h1>Installing the CLI</h1>
<p>The command line tool ships as a single static binary for every supported platform, so installing it only requires downloading the right archive.</p>
<p>Continue with the <a href="configure">configuration guide</a> once the binary is on your path, or read the <a href="https://other.example.org/faq">community FAQ</a> if something goes wrong.</p>
<p>Upgrades replace the binary in place and keep your existing configuration file untouched, which makes rolling back as easy as restoring the previous file.</p>
<pre><code>curl -sSL https://example.com/install.sh | sh</code></pre>
</article>
<footer class="site-footer"><p>Copyright 2024 Example Corp</p></footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("keeps the article and drops site chrome", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage, "https://docs.example.com/cli/install")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "single static binary")
		assert.Contains(t, result.ContentHTML, "install.sh")
		assert.NotContains(t, result.ContentHTML, "site-nav")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("reports the page title", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage, "https://docs.example.com/cli/install")

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Installing the CLI")
	})

	t.Run("resolves relative links against the page url", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage, "https://docs.example.com/cli/install")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, `href="https://docs.example.com/cli/configure"`)
		assert.Contains(t, result.ContentHTML, `href="https://other.example.org/faq"`)
	})

	t.Run("resolves links against wherever the page was served from", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(articlePage, "http://mirror.example.net/v2/cli/install")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, `href="http://mirror.example.net/v2/cli/configure"`)
		assert.NotContains(t, result.ContentHTML, "docs.example.com")
	})

	t.Run("extracts short pages through the fallbacks", func(t *testing.T) {
		t.Parallel()

		result, err := trafilatura.NewExtractor().Extract(`<html><body><p>Simple content</p></body></html>`, "")

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})

	t.Run("rejects blank input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().Extract(" \n\t", "https://docs.example.com/")

		require.Error(t, err)
		assert.Equal(t, webfetch.EINVALID, webfetch.ErrorCode(err))
	})
}
