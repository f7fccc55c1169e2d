package pagetrail

import (
	"context"
	"time"
)

// Default pagination applied when the caller leaves SearchOptions zero.
// No server-side maximum is enforced; capping is a caller concern.
const (
	DefaultSearchLimit  = 100
	DefaultSearchOffset = 0
)

// SearchOptions configures pagination for a search.
type SearchOptions struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// SearchResult is one matching fragment joined to its document's
// metadata. A document matching the query in several fragments yields
// one result per fragment.
type SearchResult struct {
	DocumentID    int64     `json:"documentId"`
	URL           string    `json:"url"`
	Hostname      string    `json:"hostname"`
	Title         string    `json:"title"`
	Excerpt       string    `json:"excerpt"`
	MDContentHash string    `json:"mdContentHash"`
	Attribute     string    `json:"attribute"`
	Snippet       string    `json:"snippet"`
	LastVisit     int64     `json:"lastVisit"`
	LastVisitDate string    `json:"lastVisitDate"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SearchResponse is a page of results plus the total match count, which
// is computed independently of the page and may exceed len(Results).
type SearchResponse struct {
	Results []*SearchResult `json:"results"`
	Count   int             `json:"count"`
	PerfMs  float64         `json:"perfMs"`
}

// SearchService executes full-text queries against the fragment index.
type SearchService interface {
	// Search runs a full-text match and returns a page of results joined
	// to document metadata, each annotated with a highlighted snippet.
	// Results are ordered by document updatedAt descending; the
	// underlying index provides no relevance ranking.
	Search(ctx context.Context, query string, opts SearchOptions) (*SearchResponse, error)
}
