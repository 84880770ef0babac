// internal/watch/types.go
package watch

import "time"

// Reason tells why a Trigger was emitted.
type Reason string

const (
	ReasonInterval Reason = "interval"
	ReasonChange   Reason = "change"
)

// Trigger asks the consumer for one regeneration run.
type Trigger struct {
	At     time.Time
	Reason Reason
	Path   string // changed file, ReasonChange only
}

// Config is the minimal runtime config the watcher needs.
type Config struct {
	// Interval > 0 emits a trigger every Interval.
	Interval time.Duration

	// Paths are files whose changes emit a trigger.
	Paths []string

	// Debounce folds bursts of file events into one trigger. 0 => 200ms.
	Debounce time.Duration
}
