package webfetch

import (
	"context"
	"time"
)

// ResourceType is the browser's lower-case classification of a request,
// e.g. "image", "stylesheet", "script" or "document".
type ResourceType string

// ResourceType constants for the types this package cares about.
const (
	ResourceDocument   ResourceType = "document"
	ResourceStylesheet ResourceType = "stylesheet"
	ResourceImage      ResourceType = "image"
	ResourceMedia      ResourceType = "media"
	ResourceFont       ResourceType = "font"
	ResourceScript     ResourceType = "script"
	ResourceXHR        ResourceType = "xhr"
	ResourceFetch      ResourceType = "fetch"
)

// ResourceTypes is a set of resource types.
type ResourceTypes []ResourceType

// MediaResourceTypes are the non-essential sub-resources skipped when
// media is disabled.
var MediaResourceTypes = ResourceTypes{
	ResourceImage,
	ResourceStylesheet,
	ResourceFont,
	ResourceMedia,
}

// Contains reports whether rt is in the set.
func (s ResourceTypes) Contains(rt ResourceType) bool {
	for _, t := range s {
		if t == rt {
			return true
		}
	}
	return false
}

// LaunchOptions configures a browser launch.
type LaunchOptions struct {
	// Headless hides the browser window. Debug sessions run visible.
	Headless bool

	// Blocked lists resource types whose requests are aborted.
	// Requests of every other type proceed unmodified.
	Blocked ResourceTypes
}

// Launcher starts browser processes.
type Launcher interface {
	// Launch starts a browser owned exclusively by the caller.
	// The caller must Close the returned Browser unless it deliberately
	// leaves the window open.
	Launch(ctx context.Context, opts LaunchOptions) (Browser, error)
}

// Browser is a running browser process.
type Browser interface {
	// NewPage opens a blank page.
	NewPage(ctx context.Context) (Page, error)

	// Close terminates the browser process. Close is safe to call more than once.
	Close() error
}

// PageInfo describes the document currently loaded in a page.
type PageInfo struct {
	URL   string
	Title string
}

// Page is a live browser tab.
type Page interface {
	// Navigate loads url and waits until the until criterion is met.
	// It returns an ETIMEOUT error when the navigation started but the
	// criterion was not reached within timeout; other failures are
	// returned as-is.
	Navigate(ctx context.Context, url string, until WaitUntil, timeout time.Duration) error

	// WaitNavigation waits for a further navigation reaching until, such
	// as the redirect that follows an interstitial challenge page.
	// Returns ETIMEOUT if none happens within timeout.
	WaitNavigation(ctx context.Context, until WaitUntil, timeout time.Duration) error

	// HTML returns the rendered document markup.
	HTML(ctx context.Context) (string, error)

	// Info returns the final URL and title of the document.
	Info(ctx context.Context) (*PageInfo, error)

	// Close closes the page.
	Close() error
}
