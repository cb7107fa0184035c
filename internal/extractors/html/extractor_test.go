package html

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakiln/ingest/internal/core/domain"
)

func writePage(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestExtractor_Formats(t *testing.T) {
	assert.Equal(t, []domain.Format{domain.FormatHTML}, New().Formats())
}

func TestExtract_StripsMarkup(t *testing.T) {
	page := `<html>
<head>
  <title>Ignored Here</title>
  <script>var tracking = true;</script>
  <style>body { color: red; }</style>
</head>
<body>
  <h1>Heading</h1>
  <p>First  paragraph with   spacing.</p>
</body>
</html>`

	result, err := New().Extract(context.Background(), writePage(t, page))
	require.NoError(t, err)

	assert.Equal(t, "Ignored Here Heading First paragraph with spacing.", result.Text)
	assert.NotContains(t, result.Text, "tracking")
	assert.NotContains(t, result.Text, "color")
	assert.Equal(t, "html.goquery", result.Method)
	// Local HTML titles come from the filename stem, decided by the loader.
	assert.Empty(t, result.Title)
}

func TestExtract_EmptyBody(t *testing.T) {
	result, err := New().Extract(context.Background(), writePage(t, "<html><body></body></html>"))
	require.NoError(t, err)

	assert.Empty(t, result.Text)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.html"))
	assert.Error(t, err)
}
