// Package structured extracts text from structured record files: JSON
// documents and CSV tables. Records are flattened into readable lines so
// downstream chunking sees prose-like text rather than syntax.
package structured

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles JSON and CSV sources.
type Extractor struct{}

// New creates a new structured text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Formats returns the formats this extractor handles.
func (e *Extractor) Formats() []domain.Format {
	return []domain.Format{domain.FormatJSON, domain.FormatCSV}
}

// Extract flattens the source into line-oriented text.
func (e *Extractor) Extract(ctx context.Context, source string) (*driven.Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch domain.Detect(source) {
	case domain.FormatJSON:
		text, err := extractJSON(source)
		if err != nil {
			return nil, err
		}
		return &driven.Extraction{Text: text, Method: "structured.json"}, nil
	case domain.FormatCSV:
		text, err := extractCSV(source)
		if err != nil {
			return nil, err
		}
		return &driven.Extraction{Text: text, Method: "structured.csv"}, nil
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, source)
	}
}

// extractJSON renders a JSON value as lines.
// Objects become "key: value" lines with sorted keys for determinism;
// arrays become "Item N: value" lines; scalars are printed directly.
func extractJSON(source string) (string, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return "", err
	}

	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		lines := make([]string, 0, len(keys))
		for _, k := range keys {
			lines = append(lines, fmt.Sprintf("%s: %v", k, v[k]))
		}
		return strings.Join(lines, "\n"), nil
	case []any:
		lines := make([]string, 0, len(v))
		for i, item := range v {
			lines = append(lines, fmt.Sprintf("Item %d: %v", i+1, item))
		}
		return strings.Join(lines, "\n"), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

// extractCSV renders a CSV file as a header line followed by one line per
// row. When a row's width matches the header, cells are labelled with their
// column names; otherwise the row is joined as-is.
func extractCSV(source string) (string, error) {
	f, err := os.Open(source)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // Ragged rows are rendered, not rejected

	var lines []string
	var headers []string

	headers, err = reader.Read()
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	lines = append(lines, "Headers: "+strings.Join(headers, ", "), "")

	for rowNum := 1; ; rowNum++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		if len(row) == len(headers) {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = headers[i] + ": " + v
			}
			lines = append(lines, fmt.Sprintf("Row %d: %s", rowNum, strings.Join(cells, " | ")))
		} else {
			lines = append(lines, strings.Join(row, ", "))
		}
	}

	return strings.Join(lines, "\n"), nil
}
