package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/mjaros/pagetrail"
	"github.com/mjaros/pagetrail/sqlite"
	"github.com/stretchr/testify/require"
)

// setupTestDB opens an in-memory database with the full schema applied.
func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

// createTestDocument inserts a document and returns it with its ID set.
func createTestDocument(t *testing.T, db *sqlite.DB, url string) *pagetrail.Document {
	t.Helper()
	svc := sqlite.NewDocumentService(db, nil, nil)
	doc := &pagetrail.Document{
		Title:     "Test Page",
		URL:       url,
		MDContent: "test page body",
		Hostname:  "example.com",
	}
	created, err := svc.Upsert(context.Background(), doc)
	require.NoError(t, err)
	require.True(t, created)
	return doc
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var docCount int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM document").Scan(&docCount)
		require.NoError(t, err)

		var fragCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM document_fragment").Scan(&fragCount)
		require.NoError(t, err)

		var ftsCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fts").Scan(&ftsCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(t.TempDir() + "/test.db")
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		err := db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening a file database is idempotent", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/test.db"

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		createTestDocument(t, db, "https://example.com/persisted")
		require.NoError(t, db.Close())

		db = sqlite.NewDB(path)
		require.NoError(t, db.Open())
		defer db.Close()

		svc := sqlite.NewDocumentService(db, nil, nil)
		doc, err := svc.FindByURL(context.Background(), "https://example.com/persisted")
		require.NoError(t, err)
		require.Equal(t, "Test Page", doc.Title)
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	a := sqlite.HashContent("the quick brown fox")
	b := sqlite.HashContent("the quick brown fox")
	c := sqlite.HashContent("something else")

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 16)
}

// touchTime is a helper for tests that need explicit, ordered
// timestamps; RFC3339 storage has second resolution.
func touchTime(day int) time.Time {
	return time.Date(2020, time.March, day, 12, 0, 0, 0, time.UTC)
}
