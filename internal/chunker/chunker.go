// Package chunker splits document text into overlapping fixed-size
// windows with positional metadata.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/datakiln/ingest/internal/core/domain"
)

// DefaultWindowSize is the default window size in characters.
const DefaultWindowSize = 1000

// DefaultOverlap is the default number of overlapping characters.
const DefaultOverlap = 100

// Chunker produces positional windows over document text.
// Chunking is purely positional: no sentence detection, no language
// awareness. It is pure and synchronous; it never fails.
type Chunker struct {
	windowSize int
	overlap    int
}

// Option configures a Chunker.
type Option func(*Chunker)

// WithWindowSize sets the window size in characters.
// Non-positive values are ignored.
func WithWindowSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.windowSize = size
		}
	}
}

// WithOverlap sets the overlap between windows in characters.
// Negative values are ignored. Overlap equal to or above the window size
// is accepted and degrades to non-overlapping windows; the cursor clamp
// in Chunk guarantees forward progress.
func WithOverlap(overlap int) Option {
	return func(c *Chunker) {
		if overlap >= 0 {
			c.overlap = overlap
		}
	}
}

// New creates a chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{
		windowSize: DefaultWindowSize,
		overlap:    DefaultOverlap,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Chunk splits text into ordered overlapping windows owned by documentID.
// Empty text yields no chunks. For non-empty text the windows cover
// [0, len(text)) with no gaps, ordinal indices increase from 0 in textual
// order, and the final window ends exactly at len(text).
func (c *Chunker) Chunk(documentID, text string) []domain.Chunk {
	if text == "" {
		return nil
	}

	step := c.windowSize - c.overlap
	if step < 1 {
		step = c.windowSize
	}
	chunks := make([]domain.Chunk, 0, len(text)/step+1)

	start := 0
	index := 0
	for start < len(text) {
		end := start + c.windowSize
		if end > len(text) {
			end = len(text)
		}

		content := text[start:end]
		chunks = append(chunks, domain.Chunk{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			Content:    content,
			Start:      start,
			End:        end,
			Index:      index,
			TokenCount: len(strings.Fields(content)),
		})
		index++

		// Advance to end-overlap; clamp to end whenever that would not
		// move the cursor forward (overlap >= window size, or a tail
		// window shorter than the overlap). The clamp is what makes
		// termination unconditional.
		next := end - c.overlap
		if c.overlap >= c.windowSize || next <= start {
			next = end
		}
		start = next
	}

	return chunks
}

// WindowSize returns the configured window size.
func (c *Chunker) WindowSize() int {
	return c.windowSize
}

// Overlap returns the configured overlap.
func (c *Chunker) Overlap() int {
	return c.overlap
}
