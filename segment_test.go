package pagetrail_test

import (
	"strings"
	"testing"

	"github.com/mjaros/pagetrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordSegmenter_Segment(t *testing.T) {
	t.Parallel()

	t.Run("returns nothing for empty input", func(t *testing.T) {
		t.Parallel()

		seg := pagetrail.NewSegmenter()

		assert.Empty(t, seg.Segment(""))
		assert.Empty(t, seg.Segment("  \n\n \t "))
	})

	t.Run("short text yields a single chunk", func(t *testing.T) {
		t.Parallel()

		seg := pagetrail.NewSegmenter()

		chunks := seg.Segment("the quick brown fox")
		require.Len(t, chunks, 1)
		assert.Equal(t, "the quick brown fox", chunks[0])
	})

	t.Run("packs paragraphs up to the word budget", func(t *testing.T) {
		t.Parallel()

		seg := &pagetrail.WordSegmenter{MaxWords: 4}

		chunks := seg.Segment("one two\n\nthree four\n\nfive")
		require.Len(t, chunks, 2)
		assert.Equal(t, "one two three four", chunks[0])
		assert.Equal(t, "five", chunks[1])
	})

	t.Run("splits oversized paragraphs on word boundaries", func(t *testing.T) {
		t.Parallel()

		seg := &pagetrail.WordSegmenter{MaxWords: 3}

		chunks := seg.Segment("a b c d e f g")
		require.Len(t, chunks, 3)
		assert.Equal(t, "a b c", chunks[0])
		assert.Equal(t, "d e f", chunks[1])
		assert.Equal(t, "g", chunks[2])
	})

	t.Run("no chunk is empty and order is preserved", func(t *testing.T) {
		t.Parallel()

		seg := &pagetrail.WordSegmenter{MaxWords: 10}
		text := "first paragraph here\n\n\n\nsecond paragraph follows it\n\nthird one closes"

		chunks := seg.Segment(text)
		require.NotEmpty(t, chunks)
		for _, c := range chunks {
			assert.NotEmpty(t, strings.TrimSpace(c))
		}
		assert.Contains(t, chunks[0], "first")
	})
}
