package main

import (
	"fmt"

	"github.com/fwojciec/webfetch"
)

// Run executes the fetch command.
func (c *FetchCmd) Run(deps *Dependencies) error {
	args := c.arguments()

	var result *webfetch.ToolResult
	var err error
	if len(c.URLs) == 1 {
		args["url"] = c.URLs[0]
		result, err = deps.Handler.FetchURL(deps.Ctx, args)
	} else {
		args["urls"] = c.URLs
		result, err = deps.Handler.FetchURLs(deps.Ctx, args)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webfetch.ErrorText(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, result.Text())
	return nil
}

// arguments renders the flags as tool arguments.
func (c *FetchCmd) arguments() map[string]any {
	return map[string]any{
		"timeout":           c.Timeout.Milliseconds(),
		"waitUntil":         c.WaitUntil,
		"extractContent":    !c.Raw,
		"maxLength":         c.MaxLength,
		"returnHtml":        c.HTML,
		"waitForNavigation": c.WaitForNavigation,
		"navigationTimeout": c.NavigationTimeout.Milliseconds(),
		"disableMedia":      !c.Media,
	}
}
