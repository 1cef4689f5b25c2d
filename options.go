package webfetch

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// Defaults applied when a fetch argument is absent or falsy.
const (
	DefaultTimeout           = 30 * time.Second
	DefaultNavigationTimeout = 10 * time.Second
	DefaultWaitUntil         = WaitLoad
)

// WaitUntil is the signal used to decide that a navigation has completed.
type WaitUntil string

// WaitUntil constants.
const (
	WaitLoad             WaitUntil = "load"
	WaitDOMContentLoaded WaitUntil = "domcontentloaded"
	WaitNetworkIdle      WaitUntil = "networkidle"
	WaitCommit           WaitUntil = "commit"
)

// ParseWaitUntil returns the WaitUntil named by s.
// An empty string yields DefaultWaitUntil.
func ParseWaitUntil(s string) (WaitUntil, error) {
	switch w := WaitUntil(strings.ToLower(strings.TrimSpace(s))); w {
	case "":
		return DefaultWaitUntil, nil
	case WaitLoad, WaitDOMContentLoaded, WaitNetworkIdle, WaitCommit:
		return w, nil
	default:
		return "", Errorf(EINVALID, "waitUntil must be one of load, domcontentloaded, networkidle, commit; got %q", s)
	}
}

// FetchOptions controls how a single page is loaded and processed.
type FetchOptions struct {
	Timeout           time.Duration
	WaitUntil         WaitUntil
	ExtractContent    bool
	MaxLength         int // 0 means no limit
	ReturnHTML        bool
	WaitForNavigation bool
	NavigationTimeout time.Duration
	DisableMedia      bool
}

// DefaultFetchOptions returns the options used when only a URL is given.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		Timeout:           DefaultTimeout,
		WaitUntil:         DefaultWaitUntil,
		ExtractContent:    true,
		MaxLength:         0,
		ReturnHTML:        false,
		WaitForNavigation: false,
		NavigationTimeout: DefaultNavigationTimeout,
		DisableMedia:      true,
	}
}

// BlockedResources returns the resource types that must not be loaded.
func (o FetchOptions) BlockedResources() ResourceTypes {
	if !o.DisableMedia {
		return nil
	}
	return MediaResourceTypes
}

// FetchRequest is a validated fetch_url call.
type FetchRequest struct {
	URL     string
	Options FetchOptions

	// Debug is nil when the caller did not set it, in which case the
	// process-wide setting applies.
	Debug *bool
}

// BatchRequest is a validated fetch_urls call.
type BatchRequest struct {
	URLs    []string
	Options FetchOptions
	Debug   *bool
}

// ResolveDebug returns the per-call debug value if one was given,
// otherwise fallback.
func ResolveDebug(debug *bool, fallback bool) bool {
	if debug != nil {
		return *debug
	}
	return fallback
}

// ParseFetchRequest validates loosely-typed tool arguments.
// A missing or empty url is rejected before anything else is inspected.
func ParseFetchRequest(args map[string]any) (*FetchRequest, error) {
	url, err := stringArg(args, "url")
	if err != nil {
		return nil, err
	}
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, Errorf(EINVALID, "URL parameter is required")
	}

	opts, err := parseFetchOptions(args)
	if err != nil {
		return nil, err
	}

	debug, err := optionalBoolArg(args, "debug")
	if err != nil {
		return nil, err
	}

	return &FetchRequest{URL: url, Options: opts, Debug: debug}, nil
}

// ParseBatchRequest validates arguments for fetch_urls.
func ParseBatchRequest(args map[string]any) (*BatchRequest, error) {
	raw, ok := args["urls"]
	if !ok || raw == nil {
		return nil, Errorf(EINVALID, "URLs parameter is required")
	}

	var urls []string
	switch v := raw.(type) {
	case []string:
		urls = append(urls, v...)
	case []any:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, Errorf(EINVALID, "urls[%d] must be a string", i)
			}
			urls = append(urls, s)
		}
	default:
		return nil, Errorf(EINVALID, "urls must be an array of strings")
	}

	for i, u := range urls {
		urls[i] = strings.TrimSpace(u)
		if urls[i] == "" {
			return nil, Errorf(EINVALID, "urls[%d] is empty", i)
		}
	}
	if len(urls) == 0 {
		return nil, Errorf(EINVALID, "URLs parameter is required")
	}

	opts, err := parseFetchOptions(args)
	if err != nil {
		return nil, err
	}

	debug, err := optionalBoolArg(args, "debug")
	if err != nil {
		return nil, err
	}

	return &BatchRequest{URLs: urls, Options: opts, Debug: debug}, nil
}

func parseFetchOptions(args map[string]any) (FetchOptions, error) {
	opts := DefaultFetchOptions()
	var err error

	if opts.Timeout, err = millisArg(args, "timeout", DefaultTimeout); err != nil {
		return opts, err
	}
	if opts.NavigationTimeout, err = millisArg(args, "navigationTimeout", DefaultNavigationTimeout); err != nil {
		return opts, err
	}
	if opts.MaxLength, err = intArg(args, "maxLength", 0); err != nil {
		return opts, err
	}

	waitUntil, err := stringArg(args, "waitUntil")
	if err != nil {
		return opts, err
	}
	if opts.WaitUntil, err = ParseWaitUntil(waitUntil); err != nil {
		return opts, err
	}

	if opts.ExtractContent, err = boolArg(args, "extractContent", true); err != nil {
		return opts, err
	}
	if opts.ReturnHTML, err = boolArg(args, "returnHtml", false); err != nil {
		return opts, err
	}
	if opts.WaitForNavigation, err = boolArg(args, "waitForNavigation", false); err != nil {
		return opts, err
	}
	if opts.DisableMedia, err = boolArg(args, "disableMedia", true); err != nil {
		return opts, err
	}

	return opts, nil
}

// stringArg returns "" for absent or null values.
func stringArg(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", Errorf(EINVALID, "%s must be a string", key)
	}
	return s, nil
}

// boolArg returns def for absent or null values.
func boolArg(args map[string]any, key string, def bool) (bool, error) {
	b, err := optionalBoolArg(args, key)
	if err != nil {
		return false, err
	}
	if b == nil {
		return def, nil
	}
	return *b, nil
}

func optionalBoolArg(args map[string]any, key string) (*bool, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, Errorf(EINVALID, "%s must be a boolean", key)
	}
	return &b, nil
}

// intArg returns def for absent, null or zero values.
func intArg(args map[string]any, key string, def int) (int, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return def, nil
	}

	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, Errorf(EINVALID, "%s must be a number", key)
		}
		f = parsed
	default:
		return 0, Errorf(EINVALID, "%s must be a number", key)
	}

	switch {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return 0, Errorf(EINVALID, "%s must be a finite number", key)
	case f < 0:
		return 0, Errorf(EINVALID, "%s must not be negative", key)
	case f != math.Trunc(f):
		return 0, Errorf(EINVALID, "%s must be a whole number", key)
	case f == 0:
		return def, nil
	case f > math.MaxInt32:
		return 0, Errorf(EINVALID, "%s is too large", key)
	}
	return int(f), nil
}

func millisArg(args map[string]any, key string, def time.Duration) (time.Duration, error) {
	ms, err := intArg(args, key, int(def/time.Millisecond))
	if err != nil {
		return 0, err
	}
	return time.Duration(ms) * time.Millisecond, nil
}
