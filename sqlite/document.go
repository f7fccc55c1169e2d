package sqlite

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjaros/pagetrail"
)

// Compile-time interface verification.
var _ pagetrail.DocumentService = (*DocumentService)(nil)

// DocumentService implements pagetrail.DocumentService using SQLite.
//
// When a staging database is configured, every true insertion is
// mirrored into it as a best-effort backup write: a staging failure is
// logged and the primary write stands. The two stores are never
// reconciled.
type DocumentService struct {
	db      *DB
	staging *DB
	logger  *slog.Logger
}

// NewDocumentService creates a new DocumentService. staging may be nil
// to disable the mirror write.
func NewDocumentService(db *DB, staging *DB, logger *slog.Logger) *DocumentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DocumentService{db: db, staging: staging, logger: logger}
}

// documentColumns is the scan order used by every document query.
const documentColumns = `id, title, url, excerpt, md_content, md_content_hash,
	publication_date, hostname, last_visit, last_visit_date, extractor,
	created_at, updated_at`

// Upsert deduplicates on URL. An existing document gets a metadata-only
// refresh and created=false; an absent one is inserted in full into the
// primary store and mirrored into staging, with doc mutated to carry the
// assigned ID and timestamps.
func (s *DocumentService) Upsert(ctx context.Context, doc *pagetrail.Document) (bool, error) {
	if err := doc.Validate(); err != nil {
		return false, err
	}

	now := time.Now().UTC()
	if doc.MDContentHash == "" && doc.MDContent != "" {
		doc.MDContentHash = HashContent(doc.MDContent)
	}

	existing, err := s.FindByURL(ctx, doc.URL)
	if err != nil && pagetrail.ErrorCode(err) != pagetrail.ENOTFOUND {
		return false, err
	}

	if existing != nil {
		doc.ID = existing.ID
		doc.UpdatedAt = now
		query, args, droppedFields := BuildUpdate("document", map[string]any{
			"excerpt":         doc.Excerpt,
			"md_content":      doc.MDContent,
			"md_content_hash": doc.MDContentHash,
			"last_visit":      doc.LastVisit,
			"last_visit_date": doc.LastVisitDate,
			"updated_at":      doc.UpdatedAt,
		}, "url = ?")
		s.warnDropped(droppedFields, doc.URL)

		if _, err := s.db.ExecContext(ctx, query, append(args, doc.URL)...); err != nil {
			return false, err
		}
		return false, nil
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	if doc.UpdatedAt.IsZero() {
		doc.UpdatedAt = now
	}

	query, args, droppedFields := BuildInsert("document", map[string]any{
		"title":            doc.Title,
		"url":              doc.URL,
		"excerpt":          doc.Excerpt,
		"md_content":       doc.MDContent,
		"md_content_hash":  doc.MDContentHash,
		"publication_date": doc.PublicationDate,
		"hostname":         doc.Hostname,
		"last_visit":       doc.LastVisit,
		"last_visit_date":  doc.LastVisitDate,
		"extractor":        doc.Extractor,
		"created_at":       doc.CreatedAt,
		"updated_at":       doc.UpdatedAt,
	})
	s.warnDropped(droppedFields, doc.URL)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, err
	}
	doc.ID, err = result.LastInsertId()
	if err != nil {
		return false, err
	}

	// Best-effort mirror into the staging store. Not rolled back on
	// failure and never reconciled with the primary.
	if s.staging != nil {
		if _, err := s.staging.ExecContext(ctx, query, args...); err != nil {
			s.logger.Warn("staging mirror write failed",
				"url", doc.URL,
				"error", err,
			)
		}
	}

	return true, nil
}

// Touch updates only the visit bookkeeping fields on an existing
// document.
func (s *DocumentService) Touch(ctx context.Context, id int64, updatedAt time.Time, lastVisit int64, lastVisitDate string) error {
	query, args, droppedFields := BuildUpdate("document", map[string]any{
		"updated_at":      updatedAt,
		"last_visit":      lastVisit,
		"last_visit_date": lastVisitDate,
	}, "id = ?")
	s.warnDropped(droppedFields, "")

	result, err := s.db.ExecContext(ctx, query, append(args, id)...)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return pagetrail.Errorf(pagetrail.ENOTFOUND, "document not found")
	}

	return nil
}

// FindByURL retrieves the document for an exact URL match. The url
// column is unique, so more than one match indicates store corruption;
// it is logged and the first row wins.
func (s *DocumentService) FindByURL(ctx context.Context, url string) (*pagetrail.Document, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+documentColumns+" FROM document WHERE url = ?", url)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*pagetrail.Document
	for rows.Next() {
		doc, err := scanDocument(rows.Scan)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		return nil, pagetrail.Errorf(pagetrail.ENOTFOUND, "document not found for url %q", url)
	}
	if len(docs) > 1 {
		s.logger.Warn("multiple documents share one URL, returning first",
			"url", url,
			"matches", len(docs),
		)
	}

	return docs[0], nil
}

// FindURLs returns every indexed URL.
func (s *DocumentService) FindURLs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT url FROM document")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}

	return urls, rows.Err()
}

// warnDropped logs fields the parameter binder could not convert.
// Dropped fields are excluded from the statement, not fatal.
func (s *DocumentService) warnDropped(fields []string, url string) {
	if len(fields) > 0 {
		s.logger.Warn("dropped unconvertible fields", "fields", fields, "url", url)
	}
}

// scanDocument scans one document row in documentColumns order.
func scanDocument(scan func(...any) error) (*pagetrail.Document, error) {
	var doc pagetrail.Document
	var createdAt, updatedAt string

	if err := scan(&doc.ID, &doc.Title, &doc.URL, &doc.Excerpt, &doc.MDContent,
		&doc.MDContentHash, &doc.PublicationDate, &doc.Hostname, &doc.LastVisit,
		&doc.LastVisitDate, &doc.Extractor, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if doc.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if doc.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &doc, nil
}
