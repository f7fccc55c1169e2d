// Package mock provides function-field mock implementations of the
// pagetrail service interfaces for testing.
package mock

import (
	"context"
	"time"

	"github.com/mjaros/pagetrail"
)

var _ pagetrail.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of pagetrail.DocumentService.
type DocumentService struct {
	UpsertFn    func(ctx context.Context, doc *pagetrail.Document) (bool, error)
	TouchFn     func(ctx context.Context, id int64, updatedAt time.Time, lastVisit int64, lastVisitDate string) error
	FindByURLFn func(ctx context.Context, url string) (*pagetrail.Document, error)
	FindURLsFn  func(ctx context.Context) ([]string, error)
}

func (s *DocumentService) Upsert(ctx context.Context, doc *pagetrail.Document) (bool, error) {
	return s.UpsertFn(ctx, doc)
}

func (s *DocumentService) Touch(ctx context.Context, id int64, updatedAt time.Time, lastVisit int64, lastVisitDate string) error {
	return s.TouchFn(ctx, id, updatedAt, lastVisit, lastVisitDate)
}

func (s *DocumentService) FindByURL(ctx context.Context, url string) (*pagetrail.Document, error) {
	return s.FindByURLFn(ctx, url)
}

func (s *DocumentService) FindURLs(ctx context.Context) ([]string, error) {
	return s.FindURLsFn(ctx)
}
