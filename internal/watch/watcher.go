// internal/watch/watcher.go
package watch

import (
	"errors"
	"path/filepath"
	"sort"
	"time"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher is a dumb trigger source: a clock and a file watch.
type Watcher struct {
	cfg   Config
	files map[string]struct{}
}

// New creates a watcher with immutable config.
func New(cfg Config) (*Watcher, error) {
	if cfg.Interval < 0 {
		return nil, errors.New("watch: interval must be >= 0")
	}
	if cfg.Interval == 0 && len(cfg.Paths) == 0 {
		return nil, errors.New("watch: interval or at least one path required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}

	files := make(map[string]struct{}, len(cfg.Paths))
	for _, p := range cfg.Paths {
		files[clean(p)] = struct{}{}
	}

	return &Watcher{cfg: cfg, files: files}, nil
}

// watched reports whether an event path names one of the watched files.
func (w *Watcher) watched(name string) bool {
	_, ok := w.files[clean(name)]
	return ok
}

// dirs returns the parent directories to subscribe to, sorted.
// Directories are watched instead of files so editors that replace a file
// by rename keep triggering.
func (w *Watcher) dirs() []string {
	set := make(map[string]struct{})
	for f := range w.files {
		set[filepath.Dir(f)] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func clean(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return filepath.Clean(p)
}
