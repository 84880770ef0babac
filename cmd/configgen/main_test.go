// cmd/configgen/main_test.go
package main

import (
	"testing"
	"time"

	"github.com/tamzrod/signage-configgen/internal/config"
)

func jobWith(intervalMs int, data ...string) *config.Config {
	var cfg config.Config
	cfg.Generator.Watch = config.WatchConfig{Enabled: true, IntervalMs: intervalMs}
	for _, d := range data {
		cfg.Generator.Players = append(cfg.Generator.Players, config.PlayerConfig{ID: d, Data: d})
	}
	return &cfg
}

func TestWatchConfig(t *testing.T) {
	w := watchConfig("job.yaml", jobWith(1500, "lobby.jsonc", "hall.jsonc"))

	if w.Interval != 1500*time.Millisecond {
		t.Fatalf("interval=%v", w.Interval)
	}
	want := []string{"job.yaml", "lobby.jsonc", "hall.jsonc"}
	if len(w.Paths) != len(want) {
		t.Fatalf("paths=%v", w.Paths)
	}
	for i := range want {
		if w.Paths[i] != want[i] {
			t.Fatalf("paths=%v, want %v", w.Paths, want)
		}
	}
}

func TestSameWatch_ReloadChanges(t *testing.T) {
	base := watchConfig("job.yaml", jobWith(1000, "lobby.jsonc"))

	if !sameWatch(base, watchConfig("job.yaml", jobWith(1000, "lobby.jsonc"))) {
		t.Fatalf("identical job should keep the watcher")
	}
	if sameWatch(base, watchConfig("job.yaml", jobWith(5000, "lobby.jsonc"))) {
		t.Fatalf("changed interval must restart the watcher")
	}
	if sameWatch(base, watchConfig("job.yaml", jobWith(1000, "lobby.jsonc", "hall.jsonc"))) {
		t.Fatalf("new player must restart the watcher")
	}
}
