package pagetrail

import "strings"

// Segmenter splits normalized body text into retrieval-sized chunks.
// The engine only requires an ordered, finite sequence of non-empty
// chunks; the exact chunking policy is pluggable.
type Segmenter interface {
	Segment(text string) []string
}

// DefaultSegmentWords is the word budget used by NewSegmenter.
const DefaultSegmentWords = 120

// WordSegmenter splits text on blank-line paragraph boundaries and packs
// paragraphs into chunks of at most MaxWords words. A single paragraph
// longer than the budget is split on word boundaries.
type WordSegmenter struct {
	MaxWords int
}

// Ensure WordSegmenter implements Segmenter at compile time.
var _ Segmenter = (*WordSegmenter)(nil)

// NewSegmenter creates a WordSegmenter with the default word budget.
func NewSegmenter() *WordSegmenter {
	return &WordSegmenter{MaxWords: DefaultSegmentWords}
}

// Segment splits text into chunks. Empty or whitespace-only input
// produces no chunks.
func (s *WordSegmenter) Segment(text string) []string {
	maxWords := s.MaxWords
	if maxWords <= 0 {
		maxWords = DefaultSegmentWords
	}

	var chunks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			chunks = append(chunks, strings.Join(current, " "))
			current = nil
		}
	}

	for _, para := range strings.Split(text, "\n\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			continue
		}

		// Oversized paragraph: flush what we have and emit word windows.
		if len(words) > maxWords {
			flush()
			for start := 0; start < len(words); start += maxWords {
				end := min(start+maxWords, len(words))
				chunks = append(chunks, strings.Join(words[start:end], " "))
			}
			continue
		}

		if len(current)+len(words) > maxWords {
			flush()
		}
		current = append(current, words...)
	}
	flush()

	return chunks
}
