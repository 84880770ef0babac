// internal/report/snapshot.go
package report

import (
	"time"

	"github.com/google/uuid"
)

// Entry is the outcome of one player in a run.
type Entry struct {
	PlayerID string   `yaml:"id" json:"id"`
	Model    string   `yaml:"model" json:"model"`
	Health   Health   `yaml:"health" json:"health"`
	Output   string   `yaml:"output,omitempty" json:"output,omitempty"`
	Stages   []string `yaml:"stages,omitempty" json:"stages,omitempty"`
	Sections []string `yaml:"sections,omitempty" json:"sections,omitempty"`
	Error    string   `yaml:"error,omitempty" json:"error,omitempty"`
}

// Snapshot is the record of one run. It holds no logic beyond counting.
type Snapshot struct {
	RunID     string    `yaml:"run_id" json:"run_id"`
	StartedAt time.Time `yaml:"started_at" json:"started_at"`
	Players   []Entry   `yaml:"players" json:"players"`
}

// New starts a snapshot with a fresh run id.
func New(at time.Time) Snapshot {
	return Snapshot{
		RunID:     uuid.NewString(),
		StartedAt: at.UTC(),
	}
}

// Add appends e in processing order.
func (s *Snapshot) Add(e Entry) {
	s.Players = append(s.Players, e)
}

// Failed returns the entries in error.
func (s Snapshot) Failed() []Entry {
	var out []Entry
	for _, e := range s.Players {
		if e.Health == HealthError {
			out = append(out, e)
		}
	}
	return out
}

// Counts returns how many players succeeded and failed.
func (s Snapshot) Counts() (ok, failed int) {
	for _, e := range s.Players {
		switch e.Health {
		case HealthOK:
			ok++
		case HealthError:
			failed++
		}
	}
	return ok, failed
}
