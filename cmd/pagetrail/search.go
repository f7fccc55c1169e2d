package main

import (
	"encoding/json"
	"fmt"

	"github.com/mjaros/pagetrail"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	resp, err := deps.Engine.Search(deps.Ctx, c.Query, c.Limit, c.Offset)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagetrail.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	if resp.Count == 0 {
		fmt.Fprintln(deps.Stdout, "No matches.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d matches (%.1fms):\n\n", resp.Count, resp.PerfMs)
	for _, r := range resp.Results {
		title := r.Title
		if title == "" {
			title = r.URL
		}
		fmt.Fprintf(deps.Stdout, "  %s [%s]\n     %s\n     %s\n", title, r.Attribute, r.URL, r.Snippet)
	}

	return nil
}
