package main

import (
	"github.com/fwojciec/webfetch/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	return mcp.NewServer(deps.Handler, deps.Version, deps.Logger).Serve(deps.Ctx, deps.Stdin, deps.Stdout)
}
