// Package pdf extracts text from PDF documents.
package pdf

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF sources.
// Text is extracted page by page; pages with no text (e.g. pure scans)
// are skipped rather than emitted as blank sections.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Formats returns the formats this extractor handles.
func (e *Extractor) Formats() []domain.Format {
	return []domain.Format{domain.FormatPDF}
}

// Extract reads every page and joins the non-empty ones into sections.
func (e *Extractor) Extract(ctx context.Context, source string) (*driven.Extraction, error) {
	f, reader, err := pdf.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sections []string
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		sections = append(sections, fmt.Sprintf("Page %d:\n%s", pageNum, text))
	}

	return &driven.Extraction{
		Text:   strings.Join(sections, "\n\n"),
		Method: "pdf.ledongthuc",
	}, nil
}
