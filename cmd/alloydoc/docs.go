package main

import (
	"fmt"

	"github.com/fwojciec/alloydoc"
)

// Run executes the docs command.
func (c *DocsCmd) Run(deps *Dependencies) error {
	if c.URI == "" {
		docs, err := deps.Documents.FindDocuments(deps.Ctx, alloydoc.DocumentFilter{})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", alloydoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, alloydoc.FormatDocumentList(docs))
		return nil
	}

	doc, err := deps.Documents.FindDocumentByURI(deps.Ctx, c.URI)
	if alloydoc.ErrorCode(err) == alloydoc.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: resource %q not found. Run 'alloydoc docs' to see available resources.\n", c.URI)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", alloydoc.ErrorMessage(err))
		return err
	}

	fmt.Fprint(deps.Stdout, doc.Content)
	return nil
}
