// Package html extracts readable text from local HTML files.
package html

import (
	"context"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles local HTML sources.
// Markup, scripts, and styles are stripped; only readable text survives.
type Extractor struct{}

// New creates a new HTML extractor.
func New() *Extractor {
	return &Extractor{}
}

// Formats returns the formats this extractor handles.
func (e *Extractor) Formats() []domain.Format {
	return []domain.Format{domain.FormatHTML}
}

// Extract parses the file and returns its visible text.
func (e *Extractor) Extract(ctx context.Context, source string) (*driven.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, err
	}

	return &driven.Extraction{
		Text:   StripMarkup(doc),
		Method: "html.goquery",
	}, nil
}

// StripMarkup removes script and style elements and collapses the
// remaining visible text to single-space separation. Shared with the
// remote URL extractor for text/html responses.
func StripMarkup(doc *goquery.Document) string {
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}
