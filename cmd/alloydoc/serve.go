package main

import (
	"github.com/fwojciec/alloydoc/mcp"
)

// Run executes the serve command. stdout carries the protocol, so logs go
// to stderr only.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := mcp.NewServer()
	s.LookupService = deps.Lookup
	s.SearchService = deps.Search
	s.DocumentService = deps.Documents
	s.SectionService = deps.Sections
	s.Prompts = deps.Prompts
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}

	return s.Serve(deps.Ctx, deps.Stdin, deps.Stdout)
}
