// Package loader resolves sources into normalised documents.
//
// It houses the single-source loader (classification, existence check,
// extractor dispatch), the bounded batch loader (fixed concurrency
// ceiling, per-source failure isolation), the directory walker, and the
// directory watcher.
package loader
