// Package web extracts text from remote URL sources.
//
// The network fetch is delegated to the Transport collaborator, which owns
// timeout and status handling. This package only decides what to do with
// the fetched content: HTML responses get their markup stripped and page
// title read; everything else is taken verbatim.
package web

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
	"github.com/datakiln/ingest/internal/extractors/html"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles remote http(s) sources.
type Extractor struct {
	transport driven.Transport
}

// New creates a new remote URL extractor over the given transport.
func New(transport driven.Transport) *Extractor {
	return &Extractor{transport: transport}
}

// Formats returns the formats this extractor handles.
func (e *Extractor) Formats() []domain.Format {
	return []domain.Format{domain.FormatURL}
}

// Extract fetches the URL and returns its readable text.
func (e *Extractor) Extract(ctx context.Context, source string) (*driven.Extraction, error) {
	content, err := e.transport.Fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	extraction := &driven.Extraction{
		Text:   content.Body,
		Title:  fallbackTitle(source),
		Method: "web.http",
	}

	if strings.Contains(strings.ToLower(content.ContentType), "text/html") {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.Body))
		if err != nil {
			// Unparseable HTML falls back to the raw body.
			return extraction, nil
		}

		if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			extraction.Title = title
		}
		extraction.Text = html.StripMarkup(doc)
	}

	return extraction, nil
}

// fallbackTitle derives a title from the URL when the page has none.
func fallbackTitle(source string) string {
	parsed, err := url.Parse(source)
	if err != nil {
		return source
	}
	if title := parsed.Host + parsed.Path; title != "" {
		return title
	}
	return source
}
