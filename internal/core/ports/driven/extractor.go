package driven

import (
	"context"

	"github.com/datakiln/ingest/internal/core/domain"
)

// Extractor produces plain text from a single source.
// Each extractor handles one format family (plain text, structured text,
// binary document, remote URL). The core depends only on this contract,
// never on the parsing internals behind it.
type Extractor interface {
	// Formats returns the formats this extractor handles.
	Formats() []domain.Format

	// Extract resolves the source and returns its text content.
	// The source has already been classified and, for local formats,
	// existence-checked by the loader. Failures are format-specific
	// causes wrapped in domain.ErrExtraction by the caller.
	Extract(ctx context.Context, source string) (*Extraction, error)
}

// Extraction is the output of one extractor invocation.
type Extraction struct {
	// Text is the extracted plain text.
	Text string

	// Title is an optional extractor-derived title (e.g. an HTML page
	// title). When empty the loader falls back to the filename stem.
	Title string

	// Method names the extraction mechanism, recorded in document
	// metadata for observability.
	Method string
}
