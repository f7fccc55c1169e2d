package sqlite

import (
	"context"
	"strings"
	"time"

	"github.com/mjaros/pagetrail"
)

// Compile-time interface verification.
var _ pagetrail.SearchService = (*SearchService)(nil)

// SearchService implements pagetrail.SearchService using the FTS5
// fragment index.
type SearchService struct {
	db *DB
}

// NewSearchService creates a new SearchService.
func NewSearchService(db *DB) *SearchService {
	return &SearchService{db: db}
}

// Search runs a full-text match joined back to document metadata.
// Results are ordered by document updatedAt descending (then row id for
// stability); the index provides no relevance ranking. Count is
// computed with an independent query, so it reflects all matches
// regardless of the requested page.
func (s *SearchService) Search(ctx context.Context, query string, opts pagetrail.SearchOptions) (*pagetrail.SearchResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, pagetrail.Errorf(pagetrail.EINVALID, "search query required")
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = pagetrail.DefaultSearchLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = pagetrail.DefaultSearchOffset
	}

	begin := time.Now()

	var count int
	if err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM fts WHERE fts MATCH ?", query,
	).Scan(&count); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT d.id, d.url, d.hostname, d.title, d.excerpt, d.md_content_hash,
		       f.attribute, snippet(fts, 2, '<mark>', '</mark>', '…', 12),
		       d.last_visit, d.last_visit_date, d.created_at, d.updated_at
		FROM fts
		JOIN document_fragment f ON f.id = fts.rowid
		JOIN document d ON d.id = f.document_id
		WHERE fts MATCH ?
		ORDER BY d.updated_at DESC, fts.rowid ASC
		LIMIT ? OFFSET ?
	`, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*pagetrail.SearchResult
	for rows.Next() {
		var result pagetrail.SearchResult
		var createdAt, updatedAt string

		if err := rows.Scan(&result.DocumentID, &result.URL, &result.Hostname,
			&result.Title, &result.Excerpt, &result.MDContentHash,
			&result.Attribute, &result.Snippet,
			&result.LastVisit, &result.LastVisitDate, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if result.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if result.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &pagetrail.SearchResponse{
		Results: results,
		Count:   count,
		PerfMs:  float64(time.Since(begin).Microseconds()) / 1000.0,
	}, nil
}
