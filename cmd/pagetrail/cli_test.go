package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/mjaros/pagetrail"
	main "github.com/mjaros/pagetrail/cmd/pagetrail"
	"github.com/mjaros/pagetrail/engine"
	"github.com/mjaros/pagetrail/sqlite"
	"github.com/stretchr/testify/require"
)

// testDeps wires Dependencies over an initialized in-memory engine.
type testDeps struct {
	*main.Dependencies
	Stdout *bytes.Buffer
	Stderr *bytes.Buffer
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := engine.New(engine.Options{
		DB:        db,
		Documents: sqlite.NewDocumentService(db, nil, logger),
		Fragments: sqlite.NewFragmentService(db),
		Searcher:  sqlite.NewSearchService(db),
		Logger:    logger,
	})
	require.NoError(t, e.Init(context.Background()))
	t.Cleanup(func() {
		require.NoError(t, e.Close())
	})

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &testDeps{
		Dependencies: &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader(""),
			Stdout: stdout,
			Stderr: stderr,
			Engine: e,
		},
		Stdout: stdout,
		Stderr: stderr,
	}
}

// indexPage indexes a page directly through the engine.
func indexPage(t *testing.T, deps *testDeps, url, title, body string) {
	t.Helper()

	res := deps.Engine.IndexPage(context.Background(), pagetrail.PagePayload{
		Title:     title,
		MDContent: body,
		Extractor: "htmltomarkdown",
	}, url, pagetrail.VisitMeta{})
	require.True(t, res.OK, res.Message)
}
