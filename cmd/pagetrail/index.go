package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mjaros/pagetrail"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	html, err := c.readInput(deps.Stdin)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	extracted, err := deps.Extractor.Extract(html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagetrail.ErrorMessage(err))
		return err
	}

	payload := pagetrail.PagePayload{
		Title:     extracted.Title,
		Excerpt:   extracted.Excerpt,
		MDContent: extracted.Markdown,
		Extractor: "htmltomarkdown",
	}

	res := deps.Engine.IndexPage(deps.Ctx, payload, c.URL, pagetrail.VisitMeta{})
	if !res.OK {
		fmt.Fprintf(deps.Stderr, "error: %s\n", res.Message)
		return pagetrail.Errorf(pagetrail.EINTERNAL, "indexing failed: %s", res.Message)
	}

	fmt.Fprintf(deps.Stdout, "%s: %s\n", res.Message, c.URL)
	return nil
}

func (c *IndexCmd) readInput(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("failed to read %q: %w", c.File, err)
	}
	return string(b), nil
}
