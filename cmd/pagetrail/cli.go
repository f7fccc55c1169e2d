package main

import (
	"context"
	"io"

	"github.com/mjaros/pagetrail"
	"github.com/mjaros/pagetrail/engine"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Engine    *engine.Engine
	Extractor pagetrail.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Index  IndexCmd  `cmd:"" help:"Extract and index a saved HTML page"`
	Search SearchCmd `cmd:"" help:"Full-text search across indexed pages"`
	Status StatusCmd `cmd:"" help:"Show engine status, or whether a URL needs indexing"`
	Find   FindCmd   `cmd:"" help:"Show the indexed document for a URL"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	URL  string `arg:"" help:"Page URL"`
	File string `arg:"" optional:"" help:"HTML file to index (reads stdin when omitted or '-')"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"FTS query"`
	Limit  int    `short:"l" default:"100" help:"Maximum results"`
	Offset int    `short:"o" default:"0" help:"Results to skip"`
	JSON   bool   `help:"Print the raw response as JSON"`
}

// StatusCmd is the "status" subcommand.
type StatusCmd struct {
	URL string `arg:"" optional:"" help:"Report page status for a URL instead of engine status"`
}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	URL  string `arg:"" help:"Exact page URL"`
	Full bool   `help:"Print the stored markdown content"`
}
