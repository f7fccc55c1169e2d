package main

import (
	"fmt"

	"github.com/mjaros/pagetrail"
)

// Run executes the status command.
func (c *StatusCmd) Run(deps *Dependencies) error {
	if c.URL == "" {
		status := deps.Engine.Status()
		if !status.OK {
			fmt.Fprintf(deps.Stdout, "engine: not ready (%s)\n", status.Err)
			return nil
		}
		fmt.Fprintln(deps.Stdout, "engine: ready")
		return nil
	}

	ps, err := deps.Engine.PageStatus(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagetrail.ErrorMessage(err))
		return err
	}

	if ps.ShouldIndex {
		fmt.Fprintf(deps.Stdout, "%s: needs indexing\n", c.URL)
	} else {
		fmt.Fprintf(deps.Stdout, "%s: indexed\n", c.URL)
	}
	return nil
}
