// Package plaintext extracts text from plain text and Markdown files.
package plaintext

import (
	"context"
	"os"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text and Markdown sources.
// The file content is the document content; Markdown markup is kept as-is.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Formats returns the formats this extractor handles.
func (e *Extractor) Formats() []domain.Format {
	return []domain.Format{domain.FormatText, domain.FormatMarkdown}
}

// Extract reads the file verbatim.
func (e *Extractor) Extract(ctx context.Context, source string) (*driven.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return nil, err
	}

	return &driven.Extraction{
		Text:   string(data),
		Method: "plaintext.read",
	}, nil
}
