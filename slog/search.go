package slog

import (
	"context"
	"log/slog"

	"github.com/mjaros/pagetrail"
)

// Ensure LoggingSearchService implements pagetrail.SearchService.
var _ pagetrail.SearchService = (*LoggingSearchService)(nil)

// LoggingSearchService wraps a SearchService with query logging.
type LoggingSearchService struct {
	next   pagetrail.SearchService
	logger *slog.Logger
}

// NewLoggingSearchService creates a new LoggingSearchService.
func NewLoggingSearchService(next pagetrail.SearchService, logger *slog.Logger) *LoggingSearchService {
	return &LoggingSearchService{next: next, logger: logger}
}

// Search delegates and logs the query, match count and duration.
func (s *LoggingSearchService) Search(ctx context.Context, query string, opts pagetrail.SearchOptions) (*pagetrail.SearchResponse, error) {
	resp, err := s.next.Search(ctx, query, opts)
	if err != nil {
		s.logger.Error("search failed", "query", query, "error", err)
		return nil, err
	}
	s.logger.Info("search",
		"query", query,
		"count", resp.Count,
		"returned", len(resp.Results),
		"perf_ms", resp.PerfMs,
	)
	return resp, nil
}
