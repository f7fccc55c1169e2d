// Package slog provides logging decorators for pagetrail services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mjaros/pagetrail"
)

// Ensure LoggingDocumentService implements pagetrail.DocumentService.
var _ pagetrail.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with structured logging
// of every write.
type LoggingDocumentService struct {
	next   pagetrail.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next pagetrail.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// Upsert delegates and logs the outcome.
func (s *LoggingDocumentService) Upsert(ctx context.Context, doc *pagetrail.Document) (bool, error) {
	begin := time.Now()
	created, err := s.next.Upsert(ctx, doc)
	if err != nil {
		s.logger.Error("document upsert failed",
			"url", doc.URL,
			"error", err,
		)
		return created, err
	}
	s.logger.Info("document upsert",
		"url", doc.URL,
		"created", created,
		"duration", time.Since(begin),
	)
	return created, nil
}

// Touch delegates and logs failures.
func (s *LoggingDocumentService) Touch(ctx context.Context, id int64, updatedAt time.Time, lastVisit int64, lastVisitDate string) error {
	err := s.next.Touch(ctx, id, updatedAt, lastVisit, lastVisitDate)
	if err != nil {
		s.logger.Error("document touch failed", "id", id, "error", err)
	}
	return err
}

// FindByURL delegates to the wrapped service.
func (s *LoggingDocumentService) FindByURL(ctx context.Context, url string) (*pagetrail.Document, error) {
	return s.next.FindByURL(ctx, url)
}

// FindURLs delegates to the wrapped service.
func (s *LoggingDocumentService) FindURLs(ctx context.Context) ([]string, error) {
	return s.next.FindURLs(ctx)
}
