package services

import (
	"context"
	"os"

	"github.com/datakiln/ingest/internal/chunker"
	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driving"
	"github.com/datakiln/ingest/internal/loader"
	"github.com/datakiln/ingest/internal/logger"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService runs the full pipeline: directory expansion, bounded
// concurrent loading, and chunking of every loaded document.
type IngestService struct {
	batch   *loader.Batch
	chunker *chunker.Chunker
}

// NewIngestService creates the pipeline service.
func NewIngestService(batch *loader.Batch, chunker *chunker.Chunker) *IngestService {
	return &IngestService{
		batch:   batch,
		chunker: chunker,
	}
}

// Ingest processes a mixed collection of sources.
//
// Directories are expanded recursively before loading; a missing
// directory aborts the whole call because a bad root is a caller error.
// Per-source load failures never abort: they are collected in the report
// alongside the documents that did load, so the caller decides whether
// partial success is acceptable.
func (s *IngestService) Ingest(ctx context.Context, sources []string) (*driving.IngestReport, error) {
	expanded, err := s.expand(sources)
	if err != nil {
		return nil, err
	}

	outcomes := s.batch.LoadAll(ctx, expanded)

	report := &driving.IngestReport{
		Chunks: make(map[string][]domain.Chunk),
	}
	for _, outcome := range outcomes {
		if !outcome.OK() {
			report.Failures = append(report.Failures, driving.SourceFailure{
				Source: outcome.Source,
				Err:    outcome.Err,
			})
			continue
		}

		doc := *outcome.Document
		report.Documents = append(report.Documents, doc)
		report.Chunks[doc.ID] = s.chunker.Chunk(doc.ID, doc.Content)
	}

	logger.Info("ingested %d documents, %d failures", len(report.Documents), len(report.Failures))
	return report, nil
}

// expand flattens directory sources into their contained files.
// Non-directory sources (files, URLs, even missing paths) pass through
// unchanged; the loader owns their failure reporting.
func (s *IngestService) expand(sources []string) ([]string, error) {
	expanded := make([]string, 0, len(sources))
	for _, source := range sources {
		if domain.IsRemote(source) {
			expanded = append(expanded, source)
			continue
		}

		info, err := os.Stat(source)
		if err != nil || !info.IsDir() {
			expanded = append(expanded, source)
			continue
		}

		paths, err := loader.ExpandDir(source, true)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, paths...)
	}
	return expanded, nil
}
