package rod_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/rod"
	gorod "github.com/go-rod/rod"
	"github.com/stretchr/testify/assert"
)

func TestClassifyNavigationError(t *testing.T) {
	t.Parallel()

	t.Run("unresolvable host is not found", func(t *testing.T) {
		t.Parallel()

		err := rod.ClassifyNavigationError(&gorod.NavigationError{Reason: "net::ERR_NAME_NOT_RESOLVED"}, "https://nope.invalid")

		assert.Equal(t, webfetch.ENOTFOUND, webfetch.ErrorCode(err))
		assert.Contains(t, webfetch.ErrorMessage(err), "https://nope.invalid")
	})

	t.Run("wrapped navigation errors are recognized", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("navigate: %w", &gorod.NavigationError{Reason: "net::ERR_NAME_NOT_RESOLVED"})

		assert.Equal(t, webfetch.ENOTFOUND, webfetch.ErrorCode(rod.ClassifyNavigationError(wrapped, "https://nope.invalid")))
	})

	t.Run("other navigation failures are unchanged", func(t *testing.T) {
		t.Parallel()

		navErr := &gorod.NavigationError{Reason: "net::ERR_CONNECTION_REFUSED"}

		assert.Same(t, navErr, rod.ClassifyNavigationError(navErr, "http://127.0.0.1:1"))
	})

	t.Run("non-navigation errors are unchanged", func(t *testing.T) {
		t.Parallel()

		other := errors.New("websocket closed")

		assert.Same(t, other, rod.ClassifyNavigationError(other, "https://example.com"))
	})
}
