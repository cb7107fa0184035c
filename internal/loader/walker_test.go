package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datakiln/ingest/internal/core/domain"
)

func TestExpandDir_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.pdf", "%PDF")
	writeFile(t, dir, "a.txt", "text")
	writeFile(t, dir, "c.exe", "MZ")

	paths, err := ExpandDir(dir, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.pdf"),
	}, paths)
}

func TestExpandDir_Recursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeFile(t, dir, "top.md", "top")
	writeFile(t, sub, "deep.csv", "a,b")
	writeFile(t, sub, "skip.bin", "xx")

	paths, err := ExpandDir(dir, true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(sub, "deep.csv"),
		filepath.Join(dir, "top.md"),
	}, paths)
}

func TestExpandDir_Shallow(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.MkdirAll(sub, 0755))
	writeFile(t, dir, "top.md", "top")
	writeFile(t, sub, "deep.csv", "a,b")

	paths, err := ExpandDir(dir, false)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "top.md")}, paths)
}

func TestExpandDir_Missing(t *testing.T) {
	_, err := ExpandDir(filepath.Join(t.TempDir(), "absent"), true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryNotFound))
}

func TestExpandDir_FileNotDirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeFile(t, dir, "plain.txt", "x")

	_, err := ExpandDir(file, true)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryNotFound))
}

func TestExpandDir_EmptyDirectory(t *testing.T) {
	paths, err := ExpandDir(t.TempDir(), true)

	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestExpandDir_DeterministicAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"z.txt", "m.json", "a.html"} {
		writeFile(t, dir, name, "content")
	}

	first, err := ExpandDir(dir, true)
	require.NoError(t, err)
	second, err := ExpandDir(dir, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.html"),
		filepath.Join(dir, "m.json"),
		filepath.Join(dir, "z.txt"),
	}, first)
}
