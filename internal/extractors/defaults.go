package extractors

import (
	"github.com/datakiln/ingest/internal/core/ports/driven"
	"github.com/datakiln/ingest/internal/extractors/docx"
	"github.com/datakiln/ingest/internal/extractors/html"
	"github.com/datakiln/ingest/internal/extractors/pdf"
	"github.com/datakiln/ingest/internal/extractors/plaintext"
	"github.com/datakiln/ingest/internal/extractors/structured"
	"github.com/datakiln/ingest/internal/extractors/web"
)

// Defaults builds a registry with the standard extractor for every
// supported format. The transport is used by the remote URL extractor;
// passing nil disables remote sources.
func Defaults(transport driven.Transport) *Registry {
	r := NewRegistry()
	r.Register(plaintext.New())
	r.Register(structured.New())
	r.Register(html.New())
	r.Register(pdf.New())
	r.Register(docx.New())
	if transport != nil {
		r.Register(web.New(transport))
	}
	return r
}
