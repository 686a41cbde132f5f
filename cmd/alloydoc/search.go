package main

import (
	"fmt"

	"github.com/fwojciec/alloydoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if c.Limit < 1 {
		err := alloydoc.Errorf(alloydoc.EINVALID, "limit must be a positive integer, got %d", c.Limit)
		fmt.Fprintf(deps.Stderr, "error: %s\n", alloydoc.ErrorMessage(err))
		return err
	}

	results, err := deps.Search.Search(deps.Ctx, c.Query, alloydoc.SearchOptions{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alloydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, alloydoc.FormatSearchResults(c.Query, results))
	return nil
}
