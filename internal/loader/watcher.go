package loader

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/datakiln/ingest/internal/core/domain"
	"github.com/datakiln/ingest/internal/logger"
)

// debounceWindow suppresses duplicate events for the same path.
// Editors and downloads commonly emit a create followed by several
// writes; one emission per burst is enough for ingestion.
const debounceWindow = 500 * time.Millisecond

// Watcher observes one directory and emits newly created or updated
// files with a supported format as sources. Watching is shallow: only
// the named directory is observed, matching fsnotify's non-recursive
// watches.
type Watcher struct {
	fs      *fsnotify.Watcher
	sources chan string
}

// NewWatcher starts watching a directory.
// Fails with domain.ErrDirectoryNotFound if the path is not a directory.
func NewWatcher(dir string) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrDirectoryNotFound, dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fs:      fsw,
		sources: make(chan string, 64),
	}
	go w.run()
	return w, nil
}

// Sources returns the channel of newly observed source paths.
// The channel closes when the watcher is closed.
func (w *Watcher) Sources() <-chan string {
	return w.sources
}

// Close stops watching and closes the source channel.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

// run forwards relevant filesystem events until the watcher closes.
func (w *Watcher) run() {
	defer close(w.sources)

	lastSeen := make(map[string]time.Time)

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !domain.Detect(event.Name).IsLocal() {
				continue
			}

			now := time.Now()
			if seen, ok := lastSeen[event.Name]; ok && now.Sub(seen) < debounceWindow {
				continue
			}
			lastSeen[event.Name] = now

			logger.Debug("watched source: %s", event.Name)
			w.sources <- event.Name

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}
