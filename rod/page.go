package rod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/webfetch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Page implements webfetch.Page at compile time.
var _ webfetch.Page = (*Page)(nil)

// Page is a Chrome tab.
type Page struct {
	page *rod.Page

	// loader identifies the main-frame document committed by the last
	// Navigate. Secondary navigations are those with a different loader.
	loader proto.NetworkLoaderID
}

// Navigate loads url and waits until the main frame's new document reaches
// the until criterion.
func (p *Page) Navigate(ctx context.Context, url string, until webfetch.WaitUntil, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page := p.page.Context(ctx)
	p.loader = ""

	// The listener must be armed before navigating or a fast page can fire
	// the event before we start listening. Events are only matched once
	// wait runs, by which time the loader is known.
	var loader proto.NetworkLoaderID
	wait := p.waitLifecycle(page, until, &loader)

	if err := page.Navigate(url); err != nil {
		if ctx.Err() != nil {
			return waitErr(ctx, until)
		}
		return ClassifyNavigationError(err, url)
	}

	current, err := mainLoader(page)
	if err != nil {
		if ctx.Err() != nil {
			return waitErr(ctx, until)
		}
		return fmt.Errorf("reading frame tree: %w", err)
	}
	loader = current
	p.loader = current

	wait()
	return waitErr(ctx, until)
}

// WaitNavigation waits for a main-frame navigation to a document other than
// the one committed by Navigate, and for that document to reach until.
// Lifecycle events of the initial document never satisfy it.
func (p *Page) WaitNavigation(ctx context.Context, until webfetch.WaitUntil, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	page := p.page.Context(ctx)
	initial := p.loader

	var loader proto.NetworkLoaderID
	lifecycle := p.waitLifecycle(page, until, &loader)
	committed := page.EachEvent(func(e *proto.PageFrameNavigated) bool {
		if e.Frame.ParentID != "" || e.Frame.LoaderID == initial {
			return false
		}
		loader = e.Frame.LoaderID
		return true
	})

	// A navigation may have committed between Navigate returning and the
	// listeners above being armed.
	if current, err := mainLoader(page); err == nil && current != initial {
		loader = current
	} else {
		committed()
	}

	if loader != "" {
		p.loader = loader
		lifecycle()
	}
	return waitErr(ctx, until)
}

// HTML returns the rendered document markup.
func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.page.Context(ctx).HTML()
}

// Info returns the page's final URL and title.
func (p *Page) Info(ctx context.Context) (*webfetch.PageInfo, error) {
	info, err := p.page.Context(ctx).Info()
	if err != nil {
		return nil, err
	}
	return &webfetch.PageInfo{URL: info.URL, Title: info.Title}, nil
}

// Close closes the tab.
func (p *Page) Close() error {
	return p.page.Close()
}

// waitLifecycle arms a listener and returns a function that blocks until
// the main frame document identified by *loader reaches until, or the page
// context is done. *loader is read when events are handled, not when
// waitLifecycle is called. Commit needs no lifecycle event: the navigation
// response has been received once the loader is known.
func (p *Page) waitLifecycle(page *rod.Page, until webfetch.WaitUntil, loader *proto.NetworkLoaderID) func() {
	name, ok := lifecycleEvents[until]
	if !ok {
		return func() {}
	}

	_ = proto.PageSetLifecycleEventsEnabled{Enabled: true}.Call(page)

	frame := p.page.FrameID
	return page.EachEvent(func(e *proto.PageLifecycleEvent) bool {
		return e.FrameID == frame && e.LoaderID == *loader && e.Name == name
	})
}

// lifecycleEvents maps wait criteria to DevTools lifecycle event names.
var lifecycleEvents = map[webfetch.WaitUntil]proto.PageLifecycleEventName{
	webfetch.WaitLoad:             proto.PageLifecycleEventNameLoad,
	webfetch.WaitDOMContentLoaded: proto.PageLifecycleEventNameDOMContentLoaded,
	webfetch.WaitNetworkIdle:      proto.PageLifecycleEventNameNetworkIdle,
}

// mainLoader returns the loader of the document currently committed in the
// main frame.
func mainLoader(page *rod.Page) (proto.NetworkLoaderID, error) {
	tree, err := proto.PageGetFrameTree{}.Call(page)
	if err != nil {
		return "", err
	}
	return tree.FrameTree.Frame.LoaderID, nil
}

// ClassifyNavigationError maps a failed navigation to an application error
// where the browser's reason identifies one. Other errors are returned
// unchanged.
func ClassifyNavigationError(err error, url string) error {
	var navErr *rod.NavigationError
	if !errors.As(err, &navErr) {
		return err
	}
	switch navErr.Reason {
	case "net::ERR_NAME_NOT_RESOLVED", "net::ERR_ADDRESS_UNREACHABLE":
		return webfetch.Errorf(webfetch.ENOTFOUND, "could not resolve %s (%s)", url, navErr.Reason)
	}
	return err
}

// waitErr converts an expired wait into ETIMEOUT. Cancellation by the
// caller is returned unchanged.
func waitErr(ctx context.Context, until webfetch.WaitUntil) error {
	err := ctx.Err()
	if errors.Is(err, context.DeadlineExceeded) {
		return webfetch.Errorf(webfetch.ETIMEOUT, "timed out waiting for %s", until)
	}
	return err
}
