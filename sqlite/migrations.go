package sqlite

// DefaultMigrations is the ordered schema statement list applied by
// Migrate. Statements are keyed by their trimmed text in the
// internal_migrations table, so editing a statement in place creates a
// new migration rather than updating the old one. Append, don't edit.
var DefaultMigrations = []string{
	`CREATE TABLE IF NOT EXISTS document (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL UNIQUE,
		excerpt TEXT NOT NULL DEFAULT '',
		md_content TEXT NOT NULL DEFAULT '',
		md_content_hash TEXT NOT NULL DEFAULT '',
		publication_date TEXT NOT NULL DEFAULT '',
		hostname TEXT NOT NULL DEFAULT '',
		last_visit INTEGER NOT NULL DEFAULT 0,
		last_visit_date TEXT NOT NULL DEFAULT '',
		extractor TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_document_hostname ON document(hostname)`,

	`CREATE INDEX IF NOT EXISTS idx_document_updated_at ON document(updated_at)`,

	`CREATE TABLE IF NOT EXISTS document_fragment (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		document_id INTEGER NOT NULL REFERENCES document(id) ON DELETE CASCADE,
		attribute TEXT NOT NULL,
		value TEXT NOT NULL,
		ord INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		UNIQUE(document_id, attribute, ord)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_fragment_document ON document_fragment(document_id)`,

	// External-content FTS index over document_fragment. Row identities
	// match fragment ids via content_rowid.
	`CREATE VIRTUAL TABLE IF NOT EXISTS fts USING fts5(
		document_id UNINDEXED,
		attribute,
		value,
		content='document_fragment',
		content_rowid='id',
		tokenize='porter unicode61'
	)`,

	// Triggers keep the FTS index in lockstep with the fragment table.
	// External-content tables require the special 'delete' insert form.
	`CREATE TRIGGER IF NOT EXISTS document_fragment_ai AFTER INSERT ON document_fragment BEGIN
		INSERT INTO fts(rowid, document_id, attribute, value)
		VALUES (new.id, new.document_id, new.attribute, new.value);
	END`,

	`CREATE TRIGGER IF NOT EXISTS document_fragment_ad AFTER DELETE ON document_fragment BEGIN
		INSERT INTO fts(fts, rowid, document_id, attribute, value)
		VALUES ('delete', old.id, old.document_id, old.attribute, old.value);
	END`,

	`CREATE TRIGGER IF NOT EXISTS document_fragment_au AFTER UPDATE ON document_fragment BEGIN
		INSERT INTO fts(fts, rowid, document_id, attribute, value)
		VALUES ('delete', old.id, old.document_id, old.attribute, old.value);
		INSERT INTO fts(rowid, document_id, attribute, value)
		VALUES (new.id, new.document_id, new.attribute, new.value);
	END`,
}
