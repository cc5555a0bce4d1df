// Package watch reports edits to a fixed set of files, so the viewer can hot-reload them.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Files watches individual files. Their parent directories are watched so editors that
// replace a file by rename still produce events.
type Files struct {
	w     *fsnotify.Watcher
	names map[string]bool // cleaned paths being watched

	mu      sync.Mutex
	pending []string
	errs    []error
	done    chan struct{}
}

// New starts watching paths. Paths whose directory does not exist are an error.
func New(paths ...string) (*Files, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	f := &Files{w: w, names: make(map[string]bool), done: make(chan struct{})}
	dirs := make(map[string]bool)
	for _, p := range paths {
		p = filepath.Clean(p)
		f.names[p] = true
		dir := filepath.Dir(p)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		dirs[dir] = true
	}
	go f.run()
	return f, nil
}

func (f *Files) run() {
	defer close(f.done)
	for {
		select {
		case ev, ok := <-f.w.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(ev.Name)
			if !f.names[name] {
				continue
			}
			f.mu.Lock()
			if !contains(f.pending, name) {
				f.pending = append(f.pending, name)
			}
			f.mu.Unlock()
		case err, ok := <-f.w.Errors:
			if !ok {
				return
			}
			f.mu.Lock()
			f.errs = append(f.errs, err)
			f.mu.Unlock()
		}
	}
}

// Changed returns the watched files modified since the last call, each once. It never blocks.
func (f *Files) Changed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.pending
	f.pending = nil
	return out
}

// Errors returns and clears the watcher errors seen since the last call.
func (f *Files) Errors() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.errs
	f.errs = nil
	return out
}

// Close stops watching.
func (f *Files) Close() error {
	err := f.w.Close()
	<-f.done
	return err
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
