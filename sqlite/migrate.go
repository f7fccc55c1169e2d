package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// internal_migrations records every schema statement that has executed,
// keyed by its exact trimmed text. It is created unconditionally before
// the statement loop so the bookkeeping table always exists.
const migrationsTable = `CREATE TABLE IF NOT EXISTS internal_migrations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	statement TEXT NOT NULL UNIQUE,
	created_at TEXT NOT NULL
)`

// Migrate applies each statement exactly once, in list order, across the
// lifetime of the database file. A statement is identified by its text
// trimmed of surrounding whitespace only: two statements differing in
// internal whitespace are distinct and both run. Any execution failure
// aborts the run; callers treat that as fatal to initialization.
func Migrate(ctx context.Context, db *DB, statements []string) error {
	if _, err := db.ExecContext(ctx, migrationsTable); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for i, statement := range statements {
		trimmed := strings.TrimSpace(statement)
		if trimmed == "" {
			continue
		}

		applied, err := migrationApplied(ctx, db, trimmed)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", i, err)
		}
		if applied {
			continue
		}

		if _, err := db.ExecContext(ctx, trimmed); err != nil {
			return fmt.Errorf("failed to run migration %d: %w", i, err)
		}

		if _, err := db.ExecContext(ctx,
			"INSERT INTO internal_migrations (statement, created_at) VALUES (?, ?)",
			trimmed, time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", i, err)
		}
	}

	return nil
}

// migrationApplied reports whether a statement with identical trimmed
// text has already run against this database.
func migrationApplied(ctx context.Context, db *DB, trimmed string) (bool, error) {
	var id int64
	err := db.QueryRowContext(ctx,
		"SELECT id FROM internal_migrations WHERE statement = ?", trimmed,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
