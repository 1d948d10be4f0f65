package content

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Holder publishes the current site copy to concurrent readers.
type Holder struct {
	mu   sync.RWMutex
	site *Site
}

// NewHolder creates a Holder serving s.
func NewHolder(s *Site) *Holder {
	return &Holder{site: s}
}

// Get returns the current site copy. Callers must not modify it.
func (h *Holder) Get() *Site {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.site
}

// Set replaces the current site copy.
func (h *Holder) Set(s *Site) {
	h.mu.Lock()
	h.site = s
	h.mu.Unlock()
}

// Watcher reloads a content file into a Holder whenever it changes on disk.
type Watcher struct {
	path     string
	holder   *Holder
	watcher  *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}

	// OnReload, if set, is called after every reload attempt.
	OnReload func(err error)
}

// NewWatcher creates a Watcher for path. The parent directory is watched
// rather than the file so editors that replace the file on save still
// trigger a reload.
func NewWatcher(path string, holder *Holder) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating content watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}
	return &Watcher{
		path:     filepath.Clean(path),
		holder:   holder,
		watcher:  fw,
		debounce: 200 * time.Millisecond,
		done:     make(chan struct{}),
	}, nil
}

// Run processes file events until ctx is cancelled, then closes the
// underlying watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("content: watcher error: %v", err)

		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

// Done is closed once Run has returned.
func (w *Watcher) Done() <-chan struct{} { return w.done }

func (w *Watcher) reload() {
	s, err := Load(w.path)
	if err != nil {
		log.Printf("content: keeping previous copy, reload of %s failed: %v", w.path, err)
	} else {
		w.holder.Set(s)
		log.Printf("content: reloaded %s", w.path)
	}
	if w.OnReload != nil {
		w.OnReload(err)
	}
}
