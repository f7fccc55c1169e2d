package main

import (
	"fmt"

	"github.com/mjaros/pagetrail"
)

// Run executes the find command.
func (c *FindCmd) Run(deps *Dependencies) error {
	doc, err := deps.Engine.FindOne(deps.Ctx, c.URL)
	if pagetrail.ErrorCode(err) == pagetrail.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: no document for %q. Use 'pagetrail index' to add one.\n", c.URL)
		return err
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagetrail.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Title:      %s\n", doc.Title)
	fmt.Fprintf(deps.Stdout, "URL:        %s\n", doc.URL)
	fmt.Fprintf(deps.Stdout, "Hostname:   %s\n", doc.Hostname)
	fmt.Fprintf(deps.Stdout, "Extractor:  %s\n", doc.Extractor)
	fmt.Fprintf(deps.Stdout, "Last visit: %s\n", doc.LastVisitDate)
	fmt.Fprintf(deps.Stdout, "Hash:       %s\n", doc.MDContentHash)
	if doc.Excerpt != "" {
		fmt.Fprintf(deps.Stdout, "Excerpt:    %s\n", doc.Excerpt)
	}

	if c.Full {
		fmt.Fprintf(deps.Stdout, "\n%s\n", doc.MDContent)
	}

	return nil
}
