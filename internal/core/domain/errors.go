package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnsupportedFormat indicates a source matched no entry in the
	// format table, so no extractor can handle it.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrSourceNotFound indicates a local source path does not exist.
	ErrSourceNotFound = errors.New("source not found")

	// ErrDirectoryNotFound indicates a directory given for expansion
	// does not exist or is not a directory. A missing root is a caller
	// error, so expansion aborts rather than returning an empty set.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrExtraction indicates a delegated extractor failed. The cause is
	// format-specific and opaque to the core; it is carried in the wrap.
	ErrExtraction = errors.New("extraction failed")

	// ErrRemoteFetch indicates the transport returned a non-success
	// status or timed out fetching a remote source.
	ErrRemoteFetch = errors.New("remote fetch failed")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
