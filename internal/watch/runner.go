// internal/watch/runner.go
package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Run emits Triggers on out until ctx is done.
// One goroutine per watcher. A consumer that is still busy delays the
// next trigger; nothing is queued beyond one.
func (w *Watcher) Run(ctx context.Context, out chan<- Trigger) error {
	var tick <-chan time.Time
	if w.cfg.Interval > 0 {
		ticker := time.NewTicker(w.cfg.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	if len(w.files) > 0 {
		fw, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer fw.Close()

		for _, d := range w.dirs() {
			if err := fw.Add(d); err != nil {
				return fmt.Errorf("watch: add %s: %w", d, err)
			}
		}
		events, errs = fw.Events, fw.Errors
	}

	debounce := time.NewTimer(w.cfg.Debounce)
	debounce.Stop()

	var (
		pending  <-chan time.Time
		lastPath string
	)

	for {
		select {
		case <-ctx.Done():
			return nil

		case at := <-tick:
			if !send(ctx, out, Trigger{At: at, Reason: ReasonInterval}) {
				return nil
			}

		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !w.watched(ev.Name) {
				continue
			}
			lastPath = ev.Name
			debounce.Reset(w.cfg.Debounce)
			pending = debounce.C

		case at := <-pending:
			pending = nil
			if !send(ctx, out, Trigger{At: at, Reason: ReasonChange, Path: lastPath}) {
				return nil
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			return fmt.Errorf("watch: %w", err)
		}
	}
}

func send(ctx context.Context, out chan<- Trigger, t Trigger) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- t:
		return true
	}
}
