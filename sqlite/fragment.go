package sqlite

import (
	"context"
	"time"

	"github.com/mjaros/pagetrail"
)

// Compile-time interface verification.
var _ pagetrail.FragmentService = (*FragmentService)(nil)

// FragmentService implements pagetrail.FragmentService using SQLite.
// The FTS index stays consistent with the fragment table through the
// mirror triggers in the schema, so every write here is also an index
// write.
type FragmentService struct {
	db *DB
}

// NewFragmentService creates a new FragmentService.
func NewFragmentService(db *DB) *FragmentService {
	return &FragmentService{db: db}
}

// CreateFragments writes all fragments in a single transaction. A
// duplicate (document, attribute, ord) row is silently skipped via
// INSERT OR IGNORE, tolerating non-deterministic retriggers of index
// maintenance; any other failure rolls the whole batch back.
func (s *FragmentService) CreateFragments(ctx context.Context, fragments []*pagetrail.Fragment) error {
	for _, fragment := range fragments {
		if err := fragment.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, fragment := range fragments {
		if fragment.CreatedAt.IsZero() {
			fragment.CreatedAt = now
		}

		result, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO document_fragment (document_id, attribute, value, ord, created_at)
			VALUES (?, ?, ?, ?, ?)
		`, fragment.DocumentID, fragment.Attribute, fragment.Value, fragment.Ord,
			fragment.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return err
		}

		// On an ignored duplicate LastInsertId is stale; only record the
		// identity of rows actually inserted.
		if rows, err := result.RowsAffected(); err == nil && rows > 0 {
			if id, err := result.LastInsertId(); err == nil {
				fragment.ID = id
			}
		}
	}

	return tx.Commit()
}

// FindFragmentsByDocument retrieves a document's fragments ordered by
// attribute and position.
func (s *FragmentService) FindFragmentsByDocument(ctx context.Context, documentID int64) ([]*pagetrail.Fragment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, document_id, attribute, value, ord, created_at
		FROM document_fragment
		WHERE document_id = ?
		ORDER BY attribute, ord
	`, documentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fragments []*pagetrail.Fragment
	for rows.Next() {
		var fragment pagetrail.Fragment
		var createdAt string

		if err := rows.Scan(&fragment.ID, &fragment.DocumentID, &fragment.Attribute,
			&fragment.Value, &fragment.Ord, &createdAt); err != nil {
			return nil, err
		}

		if fragment.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		fragments = append(fragments, &fragment)
	}

	return fragments, rows.Err()
}

// DeleteFragmentsByDocument removes all fragments for a document. The
// delete trigger removes the matching index entries.
func (s *FragmentService) DeleteFragmentsByDocument(ctx context.Context, documentID int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM document_fragment WHERE document_id = ?", documentID)
	return err
}
