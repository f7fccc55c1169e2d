package mock

import (
	"context"

	"github.com/mjaros/pagetrail"
)

var _ pagetrail.FragmentService = (*FragmentService)(nil)

// FragmentService is a mock implementation of pagetrail.FragmentService.
type FragmentService struct {
	CreateFragmentsFn           func(ctx context.Context, fragments []*pagetrail.Fragment) error
	FindFragmentsByDocumentFn   func(ctx context.Context, documentID int64) ([]*pagetrail.Fragment, error)
	DeleteFragmentsByDocumentFn func(ctx context.Context, documentID int64) error
}

func (s *FragmentService) CreateFragments(ctx context.Context, fragments []*pagetrail.Fragment) error {
	return s.CreateFragmentsFn(ctx, fragments)
}

func (s *FragmentService) FindFragmentsByDocument(ctx context.Context, documentID int64) ([]*pagetrail.Fragment, error) {
	return s.FindFragmentsByDocumentFn(ctx, documentID)
}

func (s *FragmentService) DeleteFragmentsByDocument(ctx context.Context, documentID int64) error {
	return s.DeleteFragmentsByDocumentFn(ctx, documentID)
}
