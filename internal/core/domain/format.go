package domain

import (
	"path/filepath"
	"sort"
	"strings"
)

// Format classifies a source's content family.
type Format string

// Supported formats.
const (
	// FormatText is plain text (.txt).
	FormatText Format = "text"

	// FormatMarkdown is Markdown markup (.md).
	FormatMarkdown Format = "markdown"

	// FormatHTML is a local HTML file (.html).
	FormatHTML Format = "html"

	// FormatJSON is a structured JSON file (.json).
	FormatJSON Format = "json"

	// FormatCSV is a structured CSV file (.csv).
	FormatCSV Format = "csv"

	// FormatPDF is a binary PDF document (.pdf).
	FormatPDF Format = "pdf"

	// FormatDOCX is a binary Word document (.docx).
	FormatDOCX Format = "docx"

	// FormatURL is a remote http(s) source.
	FormatURL Format = "url"

	// FormatUnknown means the source matched no entry in the suffix table.
	// It is never used as a fallback format; loading an unknown source fails.
	FormatUnknown Format = "unknown"
)

// extensionFormats maps a lower-cased file extension (without the dot)
// to its format. Adding a format is a table edit.
var extensionFormats = map[string]Format{
	"txt":  FormatText,
	"md":   FormatMarkdown,
	"html": FormatHTML,
	"json": FormatJSON,
	"csv":  FormatCSV,
	"pdf":  FormatPDF,
	"docx": FormatDOCX,
}

// Detect classifies a source string into a Format.
//
// Sources with an http or https scheme are always FormatURL, regardless of
// any trailing path suffix. Everything else is classified by file extension,
// case-insensitively. Unmapped extensions yield FormatUnknown.
//
// Detect is a pure function: no I/O, no side effects.
func Detect(source string) Format {
	if IsRemote(source) {
		return FormatURL
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(source), "."))
	if f, ok := extensionFormats[ext]; ok {
		return f
	}
	return FormatUnknown
}

// IsRemote returns true if the source is an http(s) URL.
func IsRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// IsValid returns true if the format is a recognised member of the closed set.
func (f Format) IsValid() bool {
	switch f {
	case FormatText, FormatMarkdown, FormatHTML, FormatJSON, FormatCSV,
		FormatPDF, FormatDOCX, FormatURL:
		return true
	default:
		return false
	}
}

// IsLocal returns true for formats backed by a filesystem path.
// Local sources are existence-checked before extraction.
func (f Format) IsLocal() bool {
	return f.IsValid() && f != FormatURL
}

// String returns the string representation.
func (f Format) String() string {
	return string(f)
}

// LocalExtensions returns the file extensions (without dots) accepted for
// local sources, sorted lexicographically. The set mirrors the suffix table
// used by Detect, excluding remote URLs.
func LocalExtensions() []string {
	exts := make([]string, 0, len(extensionFormats))
	for ext := range extensionFormats {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}
