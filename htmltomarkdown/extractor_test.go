package htmltomarkdown_test

import (
	"testing"

	"github.com/mjaros/pagetrail"
	"github.com/mjaros/pagetrail/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title, excerpt and markdown body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
	<title>Fallback Title</title>
	<meta property="og:title" content="A Good Page">
	<meta name="description" content="What the page is about.">
</head>
<body>
	<h1>Heading</h1>
	<p>Some <strong>important</strong> text.</p>
</body>
</html>`

		e := htmltomarkdown.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "A Good Page", result.Title)
		assert.Equal(t, "What the page is about.", result.Excerpt)
		assert.Contains(t, result.Markdown, "# Heading")
		assert.Contains(t, result.Markdown, "**important**")
	})

	t.Run("falls back to the title element", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title> Plain Title </title></head><body><p>x</p></body></html>`

		e := htmltomarkdown.NewExtractor()
		result, err := e.Extract(html)
		require.NoError(t, err)

		assert.Equal(t, "Plain Title", result.Title)
		assert.Empty(t, result.Excerpt)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		e := htmltomarkdown.NewExtractor()
		_, err := e.Extract("   ")
		require.Error(t, err)
		assert.Equal(t, pagetrail.EINVALID, pagetrail.ErrorCode(err))
	})
}
