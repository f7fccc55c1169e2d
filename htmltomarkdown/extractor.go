// Package htmltomarkdown extracts indexable text fields from raw HTML.
// It backs the CLI's manual indexing path; the hosting application's
// extraction pipeline is the production source of page payloads.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/mjaros/pagetrail"
)

// Ensure Extractor implements pagetrail.Extractor at compile time.
var _ pagetrail.Extractor = (*Extractor)(nil)

// Extractor pulls a title and excerpt from page metadata and converts
// the body to markdown.
type Extractor struct {
	conv *converter.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Extractor{conv: conv}
}

// Extract processes raw HTML into indexable fields.
func (e *Extractor) Extract(html string) (*pagetrail.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, pagetrail.Errorf(pagetrail.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	markdown, err := e.conv.ConvertString(html)
	if err != nil {
		return nil, err
	}

	return &pagetrail.ExtractResult{
		Title:    extractTitle(doc),
		Excerpt:  extractExcerpt(doc),
		Markdown: markdown,
	}, nil
}

// extractTitle prefers og:title metadata over the <title> element.
func extractTitle(doc *goquery.Document) string {
	if title := metaContent(doc, `meta[property="og:title"]`); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

// extractExcerpt prefers the description meta tag over og:description.
func extractExcerpt(doc *goquery.Document) string {
	if excerpt := metaContent(doc, `meta[name="description"]`); excerpt != "" {
		return excerpt
	}
	return metaContent(doc, `meta[property="og:description"]`)
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
