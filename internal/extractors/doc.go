// Package extractors provides implementations of the Extractor interface
// for each supported format family. Each extractor knows how to produce
// plain text from one family of sources.
//
// Extractors are registered with the Registry at startup; dispatch is a
// table lookup keyed by format, so adding a format is a table edit.
package extractors
