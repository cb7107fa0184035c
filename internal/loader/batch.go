package loader

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/logger"
)

// Outcome is the per-source result of a batch load: either a document or
// a typed failure, always tagged with its originating source.
type Outcome struct {
	// Source is the path or URL this outcome belongs to.
	Source string

	// Document is the loaded document. Nil when Err is set.
	Document *domain.Document

	// Err is the typed load failure. Nil on success.
	Err error
}

// OK returns true if the source loaded successfully.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Batch runs single-source loads over a collection with a fixed
// concurrency ceiling. The ceiling bounds in-flight extractions so a
// large batch cannot exhaust file handles or hammer remote endpoints.
type Batch struct {
	loader *Loader
	pool   *ants.Pool
}

// NewBatch creates a batch loader whose worker pool admits at most
// maxParallel concurrent loads. Values below 1 are raised to 1.
func NewBatch(loader *Loader, maxParallel int) (*Batch, error) {
	if maxParallel < 1 {
		maxParallel = 1
	}

	pool, err := ants.NewPool(maxParallel)
	if err != nil {
		return nil, err
	}

	return &Batch{loader: loader, pool: pool}, nil
}

// LoadAll loads every source and returns exactly one outcome per input,
// with outcome i corresponding to sources[i]. A failure on one source
// never cancels or delays any other; failures are recorded in their
// outcome, never raised.
func (b *Batch) LoadAll(ctx context.Context, sources []string) []Outcome {
	outcomes := make([]Outcome, len(sources))

	var wg sync.WaitGroup
	for i, source := range sources {
		i, source := i, source
		wg.Add(1)

		err := b.pool.Submit(func() {
			defer wg.Done()

			doc, err := b.loader.Load(ctx, source)
			if err != nil {
				logger.Warn("load failed: %s: %v", source, err)
				outcomes[i] = Outcome{Source: source, Err: err}
				return
			}
			outcomes[i] = Outcome{Source: source, Document: doc}
		})
		if err != nil {
			// A rejected submission still yields an outcome for its
			// source; the batch result stays one-to-one with the input.
			wg.Done()
			outcomes[i] = Outcome{Source: source, Err: fmt.Errorf("submit load: %w", err)}
		}
	}
	wg.Wait()

	return outcomes
}

// Release shuts down the worker pool.
// The batch loader must not be used after Release.
func (b *Batch) Release() {
	b.pool.Release()
}
