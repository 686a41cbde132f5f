package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/alloydoc"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	results, err := deps.Lookup.LookupType(deps.Ctx, alloydoc.LookupRequest{Query: c.Query, Limit: &c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alloydoc.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	fmt.Fprintln(deps.Stdout, alloydoc.FormatMatches(c.Query, results, nil))
	return nil
}
