package mock

import "github.com/mjaros/pagetrail"

var _ pagetrail.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagetrail.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagetrail.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagetrail.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ pagetrail.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of pagetrail.Segmenter.
type Segmenter struct {
	SegmentFn func(text string) []string
}

func (s *Segmenter) Segment(text string) []string {
	return s.SegmentFn(text)
}
