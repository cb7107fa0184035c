package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakiln/ingest/internal/core/domain"
)

func TestExtractor_Formats(t *testing.T) {
	e := New()
	assert.Equal(t, []domain.Format{domain.FormatText, domain.FormatMarkdown}, e.Formats())
}

func TestExtractor_Extract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two"), 0600))

	result, err := New().Extract(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "line one\nline two", result.Text)
	assert.Empty(t, result.Title)
	assert.Equal(t, "plaintext.read", result.Method)
}

func TestExtractor_Extract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), filepath.Join(t.TempDir(), "absent.txt"))
	assert.Error(t, err)
}

func TestExtractor_Extract_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Extract(ctx, "irrelevant.txt")
	assert.ErrorIs(t, err, context.Canceled)
}
