package pagetrail

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata (og:title, <title>).
	Title string

	// Excerpt is a short description from metadata, when present.
	Excerpt string

	// Markdown is the page body converted to markdown.
	Markdown string
}

// Extractor converts raw HTML into indexable text fields. The hosting
// application runs its own extraction pipeline; this interface covers
// the manual indexing path.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
