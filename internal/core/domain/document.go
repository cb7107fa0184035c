package domain

import "time"

// Document represents one successfully extracted source.
// It is the canonical record after extraction and is immutable:
// the loader constructs it once and hands it off, nothing mutates it.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Title is the human-readable title, derived from the filename stem
	// for local sources or the page title for remote ones.
	Title string

	// Content is the full extracted text.
	Content string

	// Source is the originating path or URL.
	Source string

	// Format is the classified content family of the source.
	Format Format

	// WordCount is the number of whitespace-delimited words in Content.
	WordCount int

	// CharCount is the length of Content in bytes.
	CharCount int

	// Metadata contains arbitrary key-value pairs, e.g. the
	// extraction method used to produce Content.
	Metadata map[string]any

	// CreatedAt is when the document was loaded.
	CreatedAt time.Time
}

// Chunk is one positional window of a document's text.
// Chunks are ephemeral: produced fresh on each chunking invocation,
// never persisted, never mutated.
type Chunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// DocumentID links to the owning Document. It is the join key
	// downstream consumers use to associate output with its source.
	DocumentID string

	// Content is the text of this window.
	Content string

	// Start is the offset of the window's first byte within the
	// document content.
	Start int

	// End is the offset one past the window's last byte.
	End int

	// Index is the 0-based ordinal of this chunk within its document.
	// Indices increase strictly in textual left-to-right order.
	Index int

	// TokenCount is a whitespace word-count estimate, not a true
	// tokenizer count.
	TokenCount int
}
