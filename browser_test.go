package webfetch_test

import (
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/stretchr/testify/assert"
)

func TestFetchOptions_BlockedResources(t *testing.T) {
	t.Parallel()

	t.Run("blocks media types by default", func(t *testing.T) {
		t.Parallel()

		blocked := webfetch.DefaultFetchOptions().BlockedResources()

		for _, rt := range []webfetch.ResourceType{
			webfetch.ResourceImage,
			webfetch.ResourceStylesheet,
			webfetch.ResourceFont,
			webfetch.ResourceMedia,
		} {
			assert.True(t, blocked.Contains(rt), rt)
		}
		for _, rt := range []webfetch.ResourceType{
			webfetch.ResourceDocument,
			webfetch.ResourceScript,
			webfetch.ResourceXHR,
			webfetch.ResourceFetch,
			"other",
		} {
			assert.False(t, blocked.Contains(rt), rt)
		}
	})

	t.Run("blocks nothing when media is enabled", func(t *testing.T) {
		t.Parallel()

		opts := webfetch.DefaultFetchOptions()
		opts.DisableMedia = false

		assert.Empty(t, opts.BlockedResources())
		assert.False(t, opts.BlockedResources().Contains(webfetch.ResourceImage))
	})
}
