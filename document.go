package pagetrail

import (
	"context"
	"time"
)

// Document is the canonical record for one indexed URL. At most one live
// Document exists per URL; repeat visits touch the existing row instead
// of creating a new one.
type Document struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	URL             string    `json:"url"`
	Excerpt         string    `json:"excerpt"`
	MDContent       string    `json:"mdContent"`
	MDContentHash   string    `json:"mdContentHash"`
	PublicationDate string    `json:"publicationDate"`
	Hostname        string    `json:"hostname"`
	LastVisit       int64     `json:"lastVisit"` // epoch milliseconds
	LastVisitDate   string    `json:"lastVisitDate"`
	Extractor       string    `json:"extractor"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}

// DocumentService represents a service for managing documents.
type DocumentService interface {
	// Upsert deduplicates on URL. If a document with the same URL exists,
	// only its metadata is refreshed and created is false. Otherwise doc
	// is inserted in full (ID and timestamps assigned) and created is
	// true; a true insertion is the caller's signal to decompose and
	// index fragments.
	Upsert(ctx context.Context, doc *Document) (created bool, err error)

	// Touch updates only the visit bookkeeping fields on an existing
	// document. Used on repeat visits where content needs no re-upsert.
	Touch(ctx context.Context, id int64, updatedAt time.Time, lastVisit int64, lastVisitDate string) error

	// FindByURL retrieves the document for an exact URL match.
	// Returns ENOTFOUND if no document exists for the URL.
	FindByURL(ctx context.Context, url string) (*Document, error)

	// FindURLs returns every indexed URL. Used to warm the seen-URL
	// filter at startup.
	FindURLs(ctx context.Context) ([]string, error)
}
