package pagetrail_test

import (
	"testing"

	"github.com/mjaros/pagetrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	t.Parallel()

	t.Run("emits title, excerpt and url at position zero", func(t *testing.T) {
		t.Parallel()

		seg := &pagetrail.WordSegmenter{MaxWords: 100}
		fragments := pagetrail.Decompose(7, "Title", "An excerpt", "https://example.com/a", "body text", seg)

		require.Len(t, fragments, 4)
		assert.Equal(t, pagetrail.AttrTitle, fragments[0].Attribute)
		assert.Equal(t, "Title", fragments[0].Value)
		assert.Equal(t, pagetrail.AttrExcerpt, fragments[1].Attribute)
		assert.Equal(t, pagetrail.AttrURL, fragments[2].Attribute)
		assert.Equal(t, pagetrail.AttrContent, fragments[3].Attribute)

		for _, f := range fragments {
			assert.EqualValues(t, 7, f.DocumentID)
			assert.Zero(t, f.Ord)
			require.NoError(t, f.Validate())
		}
	})

	t.Run("skips empty fields", func(t *testing.T) {
		t.Parallel()

		seg := pagetrail.NewSegmenter()
		fragments := pagetrail.Decompose(1, "", "", "https://example.com/b", "", seg)

		require.Len(t, fragments, 1)
		assert.Equal(t, pagetrail.AttrURL, fragments[0].Attribute)
	})

	t.Run("numbers body chunks in order", func(t *testing.T) {
		t.Parallel()

		seg := &pagetrail.WordSegmenter{MaxWords: 2}
		fragments := pagetrail.Decompose(1, "", "", "", "one two three four five", seg)

		require.Len(t, fragments, 3)
		for i, f := range fragments {
			assert.Equal(t, pagetrail.AttrContent, f.Attribute)
			assert.Equal(t, i, f.Ord)
		}
	})
}

func TestFragment_Validate(t *testing.T) {
	t.Parallel()

	t.Run("valid fragment", func(t *testing.T) {
		t.Parallel()

		f := &pagetrail.Fragment{DocumentID: 1, Attribute: pagetrail.AttrTitle, Value: "x"}
		assert.NoError(t, f.Validate())
	})

	t.Run("missing document ID", func(t *testing.T) {
		t.Parallel()

		f := &pagetrail.Fragment{Attribute: pagetrail.AttrTitle, Value: "x"}
		err := f.Validate()
		require.Error(t, err)
		assert.Equal(t, pagetrail.EINVALID, pagetrail.ErrorCode(err))
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		f := &pagetrail.Fragment{DocumentID: 1, Attribute: pagetrail.AttrTitle}
		err := f.Validate()
		require.Error(t, err)
		assert.Equal(t, pagetrail.EINVALID, pagetrail.ErrorCode(err))
	})
}
