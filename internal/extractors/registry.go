package extractors

import (
	"sort"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
)

// Registry maps formats to their extractors.
// It replaces per-format conditional chains with a dispatch table.
type Registry struct {
	byFormat map[domain.Format]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		byFormat: make(map[domain.Format]driven.Extractor),
	}
}

// Register adds an extractor for every format it reports.
// Registering a format twice replaces the earlier binding.
func (r *Registry) Register(e driven.Extractor) {
	for _, f := range e.Formats() {
		r.byFormat[f] = e
	}
}

// For returns the extractor bound to a format.
func (r *Registry) For(f domain.Format) (driven.Extractor, bool) {
	e, ok := r.byFormat[f]
	return e, ok
}

// Formats returns all registered formats, sorted for stable output.
func (r *Registry) Formats() []domain.Format {
	formats := make([]domain.Format, 0, len(r.byFormat))
	for f := range r.byFormat {
		formats = append(formats, f)
	}
	sort.Slice(formats, func(i, j int) bool { return formats[i] < formats[j] })
	return formats
}
