package mock

import (
	"context"

	"github.com/mjaros/pagetrail"
)

var _ pagetrail.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of pagetrail.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, opts pagetrail.SearchOptions) (*pagetrail.SearchResponse, error)
}

func (s *SearchService) Search(ctx context.Context, query string, opts pagetrail.SearchOptions) (*pagetrail.SearchResponse, error) {
	return s.SearchFn(ctx, query, opts)
}
