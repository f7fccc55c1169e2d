package pagetrail

import (
	"context"
	"time"
)

// Fragment attributes. Each names the document field a fragment was
// decomposed from.
const (
	AttrTitle   = "title"
	AttrExcerpt = "excerpt"
	AttrURL     = "url"
	AttrContent = "content"
)

// Fragment is one named, ordered slice of a document's text, the unit
// indexed for search. Fragments are exclusively owned by their document
// and are destroyed with it. They are append-only per document
// generation: once written for an insertion they are not rewritten on
// subsequent visits.
type Fragment struct {
	ID         int64     `json:"id"`
	DocumentID int64     `json:"documentId"`
	Attribute  string    `json:"attribute"`
	Value      string    `json:"value"`
	Ord        int       `json:"ord"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the fragment contains invalid fields.
func (f *Fragment) Validate() error {
	if f.DocumentID == 0 {
		return Errorf(EINVALID, "fragment document ID required")
	}
	if f.Attribute == "" {
		return Errorf(EINVALID, "fragment attribute required")
	}
	if f.Value == "" {
		return Errorf(EINVALID, "fragment value required")
	}
	return nil
}

// FragmentService represents a service for managing fragments.
type FragmentService interface {
	// CreateFragments writes all fragments in a single transaction with
	// insert-or-ignore semantics: a duplicate (document, attribute, ord)
	// row is silently skipped rather than failing the batch.
	CreateFragments(ctx context.Context, fragments []*Fragment) error

	// FindFragmentsByDocument retrieves a document's fragments ordered by
	// attribute and position.
	FindFragmentsByDocument(ctx context.Context, documentID int64) ([]*Fragment, error)

	// DeleteFragmentsByDocument removes all fragments for a document.
	DeleteFragmentsByDocument(ctx context.Context, documentID int64) error
}

// Decompose splits a document's searchable fields into an ordered
// fragment sequence: one fragment each for title, excerpt and url at
// position 0 (skipped when empty), followed by the body split into
// retrieval-sized chunks by the segmenter at positions 0..N-1.
func Decompose(documentID int64, title, excerpt, url, body string, seg Segmenter) []*Fragment {
	var fragments []*Fragment

	for _, f := range []struct {
		attribute string
		value     string
	}{
		{AttrTitle, title},
		{AttrExcerpt, excerpt},
		{AttrURL, url},
	} {
		if f.value == "" {
			continue
		}
		fragments = append(fragments, &Fragment{
			DocumentID: documentID,
			Attribute:  f.attribute,
			Value:      f.value,
		})
	}

	for i, chunk := range seg.Segment(body) {
		fragments = append(fragments, &Fragment{
			DocumentID: documentID,
			Attribute:  AttrContent,
			Value:      chunk,
			Ord:        i,
		})
	}

	return fragments
}
