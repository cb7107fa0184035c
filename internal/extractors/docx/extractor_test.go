package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakiln/ingest/internal/core/domain"
)

// createTestDOCX writes a minimal valid DOCX file and returns its path.
func createTestDOCX(t *testing.T, documentXML, coreXML string) string {
	t.Helper()

	buf := new(bytes.Buffer)
	w := zip.NewWriter(buf)

	contentTypes, err := w.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = contentTypes.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="xml" ContentType="application/xml"/>
</Types>`))
	require.NoError(t, err)

	if documentXML != "" {
		doc, err := w.Create("word/document.xml")
		require.NoError(t, err)
		_, err = doc.Write([]byte(documentXML))
		require.NoError(t, err)
	}

	if coreXML != "" {
		core, err := w.Create("docProps/core.xml")
		require.NoError(t, err)
		_, err = core.Write([]byte(coreXML))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "document.docx")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0600))
	return path
}

func TestExtractor_Formats(t *testing.T) {
	assert.Equal(t, []domain.Format{domain.FormatDOCX}, New().Formats())
}

func TestExtract_Paragraphs(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>First paragraph.</w:t></w:r></w:p>
<w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph.</w:t></w:r></w:p>
</w:body>
</w:document>`

	path := createTestDOCX(t, docXML, "")

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "First paragraph.\nSecond paragraph.", result.Text)
	assert.Equal(t, "docx.archive", result.Method)
	assert.Empty(t, result.Title)
}

func TestExtract_AuthoredTitle(t *testing.T) {
	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>Body</w:t></w:r></w:p></w:body>
</w:document>`
	coreXML := `<?xml version="1.0" encoding="UTF-8"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"
xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>Quarterly Report</dc:title>
</cp:coreProperties>`

	path := createTestDOCX(t, docXML, coreXML)

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Quarterly Report", result.Title)
	assert.Equal(t, "Body", result.Text)
}

func TestExtract_MissingDocumentXML(t *testing.T) {
	path := createTestDOCX(t, "", "")

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Empty(t, result.Text)
}

func TestExtract_NotAnArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.docx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip"), 0600))

	_, err := New().Extract(context.Background(), path)
	assert.Error(t, err)
}
