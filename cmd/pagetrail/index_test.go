package main_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mjaros/pagetrail"
	main "github.com/mjaros/pagetrail/cmd/pagetrail"
	"github.com/mjaros/pagetrail/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("indexes a file and makes it searchable", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*pagetrail.ExtractResult, error) {
				assert.Contains(t, html, "<h1>")
				return &pagetrail.ExtractResult{
					Title:    "Herons",
					Markdown: "Herons wade through shallow water.",
				}, nil
			},
		}

		path := filepath.Join(t.TempDir(), "page.html")
		require.NoError(t, os.WriteFile(path, []byte("<html><body><h1>Herons</h1></body></html>"), 0644))

		cmd := &main.IndexCmd{URL: "https://example.com/herons", File: path}
		require.NoError(t, cmd.Run(deps.Dependencies))

		assert.Contains(t, deps.Stdout.String(), "document indexed")
		assert.Contains(t, deps.Stdout.String(), "https://example.com/herons")
		assert.Empty(t, deps.Stderr.String())

		resp, err := deps.Engine.Search(deps.Ctx, "herons", 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, resp.Count)
	})

	t.Run("reads stdin when no file given", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		deps.Stdin = strings.NewReader("<html><body><p>From stdin</p></body></html>")

		var received string
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*pagetrail.ExtractResult, error) {
				received = html
				return &pagetrail.ExtractResult{Title: "Stdin", Markdown: "From stdin"}, nil
			},
		}

		cmd := &main.IndexCmd{URL: "https://example.com/stdin"}
		require.NoError(t, cmd.Run(deps.Dependencies))

		assert.Contains(t, received, "From stdin")
		assert.Contains(t, deps.Stdout.String(), "document indexed")
	})

	t.Run("returns error when extraction fails", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*pagetrail.ExtractResult, error) {
				return nil, pagetrail.Errorf(pagetrail.EINVALID, "empty document")
			},
		}

		cmd := &main.IndexCmd{URL: "https://example.com/broken"}
		err := cmd.Run(deps.Dependencies)

		require.Error(t, err)
		assert.Contains(t, deps.Stderr.String(), "error:")
		assert.Empty(t, deps.Stdout.String())
	})

	t.Run("returns error for unreadable file", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)

		cmd := &main.IndexCmd{URL: "https://example.com/missing", File: filepath.Join(t.TempDir(), "absent.html")}
		err := cmd.Run(deps.Dependencies)

		require.Error(t, err)
		assert.Contains(t, deps.Stderr.String(), "error:")
	})

	t.Run("reports indexing failure from engine", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		deps.Stdin = strings.NewReader("<html><body><p>body</p></body></html>")
		deps.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*pagetrail.ExtractResult, error) {
				return &pagetrail.ExtractResult{Title: "No URL", Markdown: "body"}, nil
			},
		}

		// Empty URL fails document validation inside the engine.
		cmd := &main.IndexCmd{URL: ""}
		err := cmd.Run(deps.Dependencies)

		require.Error(t, err)
		assert.Contains(t, deps.Stderr.String(), "error:")
	})
}
