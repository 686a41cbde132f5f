package main

import (
	"fmt"

	"github.com/fwojciec/alloydoc"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	entry, err := deps.Lookup.Resolve(deps.Ctx, entryID(c.ID))
	if alloydoc.ErrorCode(err) == alloydoc.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: entry %q not found. Use 'alloydoc lookup' to find entry ids.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alloydoc.ErrorMessage(err))
		return err
	}

	var body string
	if c.Full {
		section, err := alloydoc.FindBody(deps.Ctx, deps.Sections, entry.BodyRef)
		switch {
		case err == nil:
			body = section.Content
		case alloydoc.ErrorCode(err) == alloydoc.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "warning: section %s is no longer available\n", entry.BodyRef)
		default:
			return err
		}
	}

	fmt.Fprint(deps.Stdout, alloydoc.FormatEntry(entry, body))
	return nil
}
