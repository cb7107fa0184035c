package loader

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/logger"
)

// ExpandDir expands a directory into the sorted list of contained files
// whose format the pipeline supports. Traversal is recursive when asked;
// shallow traversal reads only the top level. Output order is
// lexicographic on the full path so batch ordering is reproducible
// across runs.
//
// A missing or non-directory root fails with domain.ErrDirectoryNotFound:
// a bad root is a caller error, not a per-item condition.
func ExpandDir(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, dir)
	}

	var paths []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && domain.Detect(path).IsLocal() {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", dir, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if domain.Detect(path).IsLocal() {
				paths = append(paths, path)
			}
		}
	}

	sort.Strings(paths)
	logger.Debug("expanded %s to %d sources", dir, len(paths))
	return paths, nil
}
