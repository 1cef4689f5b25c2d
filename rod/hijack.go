package rod

import (
	"strings"

	"github.com/fwojciec/webfetch"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// blockResources intercepts every request made by the browser, failing
// those whose resource type is in blocked and continuing the rest untouched.
func blockResources(browser *rod.Browser, blocked webfetch.ResourceTypes) (*rod.HijackRouter, error) {
	router := browser.HijackRequests()
	err := router.Add("*", "", func(h *rod.Hijack) {
		if blocked.Contains(ResourceType(h.Request.Type())) {
			h.Response.Fail(proto.NetworkErrorReasonBlockedByClient)
			return
		}
		h.ContinueRequest(&proto.FetchContinueRequest{})
	})
	if err != nil {
		return nil, err
	}

	go router.Run()
	return router, nil
}

// ResourceType maps the DevTools resource type (e.g. "Image") to its
// webfetch equivalent (e.g. "image").
func ResourceType(t proto.NetworkResourceType) webfetch.ResourceType {
	return webfetch.ResourceType(strings.ToLower(string(t)))
}
