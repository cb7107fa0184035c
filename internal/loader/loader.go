package loader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/extractors"
	"github.com/datakiln/ingest/internal/logger"
)

// Loader resolves one source into a Document.
// It classifies the source, verifies local existence, dispatches to the
// registered extractor, and wraps the result. It is safe for concurrent
// use: all per-load state is local.
type Loader struct {
	registry *extractors.Registry
}

// New creates a loader over an extractor registry.
func New(registry *extractors.Registry) *Loader {
	return &Loader{registry: registry}
}

// Load resolves a single source into a Document.
//
// Failure taxonomy:
//   - domain.ErrUnsupportedFormat: the source matched no format table entry
//   - domain.ErrSourceNotFound: a local path does not exist
//   - domain.ErrRemoteFetch: the transport failed or returned non-success
//   - domain.ErrExtraction: the delegated extractor failed
//
// No retries happen here; retry policy belongs to the transport.
func (l *Loader) Load(ctx context.Context, source string) (*domain.Document, error) {
	format := domain.Detect(source)
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, source)
	}

	// Remote sources skip the existence check; transport-level failure
	// is deferred to the extractor's fetch.
	if format.IsLocal() {
		if _, err := os.Stat(source); err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", domain.ErrSourceNotFound, source)
			}
			return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceNotFound, source, err)
		}
	}

	extractor, ok := l.registry.For(format)
	if !ok {
		return nil, fmt.Errorf("%w: no extractor for %s", domain.ErrUnsupportedFormat, format)
	}

	logger.Debug("loading %s as %s", source, format)

	extraction, err := extractor.Extract(ctx, source)
	if err != nil {
		if errors.Is(err, domain.ErrRemoteFetch) {
			return nil, fmt.Errorf("load %s: %w", source, err)
		}
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrExtraction, source, err)
	}

	title := extraction.Title
	if title == "" {
		title = stem(source)
	}

	return &domain.Document{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   extraction.Text,
		Source:    source,
		Format:    format,
		WordCount: len(strings.Fields(extraction.Text)),
		CharCount: len(extraction.Text),
		Metadata: map[string]any{
			"extraction_method": extraction.Method,
		},
		CreatedAt: time.Now(),
	}, nil
}

// stem returns the filename without directory or extension.
func stem(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
