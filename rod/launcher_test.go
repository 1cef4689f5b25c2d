package rod_test

import (
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/rod"
	"github.com/stretchr/testify/assert"
)

func TestSurvivesExit(t *testing.T) {
	t.Parallel()

	t.Run("headless browsers die with the process", func(t *testing.T) {
		t.Parallel()

		assert.False(t, rod.SurvivesExit(webfetch.LaunchOptions{Headless: true}))
	})

	t.Run("visible debugging browsers outlive the process", func(t *testing.T) {
		t.Parallel()

		assert.True(t, rod.SurvivesExit(webfetch.LaunchOptions{Headless: false}))
	})
}
