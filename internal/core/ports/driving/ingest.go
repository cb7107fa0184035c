package driving

import (
	"context"

	"github.com/datakiln/ingest/internal/core/domain"
)

// Ingestor runs the full ingestion pipeline: directory expansion,
// bounded concurrent loading, and chunking of every loaded document.
type Ingestor interface {
	// Ingest processes a mixed collection of sources (file paths,
	// directories, URLs) and returns the consolidated report.
	// Per-source load failures are collected in the report; a missing
	// directory aborts the whole call.
	Ingest(ctx context.Context, sources []string) (*IngestReport, error)
}

// IngestReport is the consolidated result of one pipeline run.
type IngestReport struct {
	// Documents holds every successfully loaded document.
	Documents []domain.Document

	// Chunks maps a document ID to its ordered chunk sequence.
	Chunks map[string][]domain.Chunk

	// Failures records every source that could not be loaded.
	Failures []SourceFailure
}

// SourceFailure identifies one source that failed to load and why.
type SourceFailure struct {
	// Source is the path or URL that failed.
	Source string

	// Err is the typed load failure.
	Err error
}
