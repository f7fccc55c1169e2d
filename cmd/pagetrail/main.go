package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mjaros/pagetrail/engine"
	"github.com/mjaros/pagetrail/htmltomarkdown"
	pagetrailslog "github.com/mjaros/pagetrail/slog"
	"github.com/mjaros/pagetrail/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database paths. Set before calling Run().
	DBPath      string
	StagingPath string

	// Engine for end-to-end testing.
	Engine *engine.Engine
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		StagingPath: os.Getenv("PAGETRAIL_STAGING_DB"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Engine != nil {
		return m.Engine.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagetrail"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagetrail --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire stores and services, then bring the engine up.
	db := sqlite.NewDB(m.DBPath)
	var staging *sqlite.DB
	if m.StagingPath != "" {
		staging = sqlite.NewDB(m.StagingPath)
	}

	m.Engine = engine.New(engine.Options{
		DB:        db,
		Staging:   staging,
		Documents: pagetrailslog.NewLoggingDocumentService(sqlite.NewDocumentService(db, staging, logger), logger),
		Fragments: sqlite.NewFragmentService(db),
		Searcher:  pagetrailslog.NewLoggingSearchService(sqlite.NewSearchService(db), logger),
		Logger:    logger,
	})
	if err := m.Engine.Init(ctx); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PAGETRAIL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.Engine = m.Engine
	deps.Extractor = htmltomarkdown.NewExtractor()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGETRAIL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagetrail.db"
	}
	dir := filepath.Join(home, ".pagetrail")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagetrail.db")
}
