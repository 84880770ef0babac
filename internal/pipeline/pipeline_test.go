// internal/pipeline/pipeline_test.go
package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/signage-configgen/internal/config"
	"github.com/tamzrod/signage-configgen/internal/report"
)

// ---- fixtures ----

const lobbyData = `{
  // lobby screen
  "model": "garlic",
  "uuid": "6f1c2a8e-3b4d-4c5e-9f60-718293a4b5c6",
  "player_name": "Lobby",
  "content_url": "https://cms.example.com/lobby",
  "dhcp": true,
  "standby_mode": "dimmed"
}`

const hallData = `{
  "uuid": "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d",
  "player_name": "Hall",
  "content_url": "https://cms.example.com/hall",
  "dhcp": true
}`

type fakeSink struct {
	writes map[string][]byte
}

func (f *fakeSink) WriteFile(path string, data []byte) error {
	if f.writes == nil {
		f.writes = make(map[string][]byte)
	}
	f.writes[path] = data
	return nil
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func job(dir string, players ...config.PlayerConfig) *config.Config {
	return &config.Config{Generator: config.GeneratorConfig{
		OutputDir: filepath.Join(dir, "out"),
		Index:     config.IndexConfig{Enabled: true, Title: "Screens", File: "index.html"},
		Report:    config.ReportConfig{Enabled: true, File: "report.yaml", Format: "yaml"},
		Players:   players,
	}}
}

// ---- tests ----

func TestRun_WritesDocumentsIndexAndReport(t *testing.T) {
	dir := t.TempDir()
	lobby := writeFile(t, dir, "lobby.jsonc", lobbyData)
	hall := writeFile(t, dir, "hall.jsonc", hallData)

	cfg := job(dir,
		config.PlayerConfig{ID: "lobby", Data: lobby},
		config.PlayerConfig{ID: "hall", Model: "qbic", Data: hall},
	)

	snap, err := Run(context.Background(), cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("Run err=%v", err)
	}
	if ok, failed := snap.Counts(); ok != 2 || failed != 0 {
		t.Fatalf("ok=%d failed=%d", ok, failed)
	}

	out := cfg.Generator.OutputDir

	xml, err := os.ReadFile(filepath.Join(out, "lobby", "configuration.xml"))
	if err != nil {
		t.Fatalf("lobby document: %v", err)
	}
	if !strings.Contains(string(xml), "Lobby") || !strings.Contains(string(xml), "dimmed") {
		t.Fatalf("unexpected lobby document:\n%s", xml)
	}

	ini, err := os.ReadFile(filepath.Join(out, "hall", "player.ini"))
	if err != nil {
		t.Fatalf("hall document: %v", err)
	}
	if !strings.Contains(string(ini), "Hall") {
		t.Fatalf("unexpected hall document:\n%s", ini)
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	if !strings.Contains(string(page), `href="lobby/configuration.xml"`) ||
		!strings.Contains(string(page), "<title>Screens</title>") {
		t.Fatalf("unexpected index:\n%s", page)
	}

	if _, err := os.Stat(filepath.Join(out, "report.yaml")); err != nil {
		t.Fatalf("report: %v", err)
	}

	if snap.Players[0].Model != "GARLIC" || snap.Players[1].Model != "QBIC" {
		t.Fatalf("models=%q,%q", snap.Players[0].Model, snap.Players[1].Model)
	}
}

func TestRun_FailedPlayerDoesNotStopRun(t *testing.T) {
	dir := t.TempDir()
	lobby := writeFile(t, dir, "lobby.jsonc", lobbyData)
	broken := writeFile(t, dir, "broken.jsonc", `{"player_name": "Broken"}`)

	cfg := job(dir,
		config.PlayerConfig{ID: "broken", Model: "iadea_xmp2x00", Data: broken},
		config.PlayerConfig{ID: "lobby", Data: lobby},
	)

	var logs bytes.Buffer
	sink := &fakeSink{}
	snap, err := run(context.Background(), cfg, zerolog.New(&logs), sink, time.Now())
	if err == nil || !strings.Contains(err.Error(), `player "broken"`) {
		t.Fatalf("expected aggregated error naming broken, got %v", err)
	}

	if snap.Players[0].Health != report.HealthError || snap.Players[1].Health != report.HealthOK {
		t.Fatalf("unexpected health: %+v", snap.Players)
	}
	if _, ok := sink.writes[filepath.Join(cfg.Generator.OutputDir, "lobby", "configuration.xml")]; !ok {
		t.Fatalf("lobby should still be written: %v", sink.writes)
	}
	if _, ok := sink.writes[filepath.Join(cfg.Generator.OutputDir, "index.html")]; !ok {
		t.Fatalf("index should be written after failures")
	}
	if !strings.Contains(logs.String(), `"player":"broken"`) {
		t.Fatalf("failure not logged: %s", logs.String())
	}
}

func TestRun_NoModel(t *testing.T) {
	dir := t.TempDir()
	hall := writeFile(t, dir, "hall.jsonc", hallData)

	snap, err := run(context.Background(), job(dir, config.PlayerConfig{ID: "hall", Data: hall}),
		zerolog.Nop(), &fakeSink{}, time.Now())
	if err == nil {
		t.Fatalf("expected error without model")
	}
	if !strings.Contains(snap.Players[0].Error, "no model") {
		t.Fatalf("error=%q", snap.Players[0].Error)
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	lobby := writeFile(t, dir, "lobby.jsonc", lobbyData)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := run(ctx, job(dir, config.PlayerConfig{ID: "lobby", Data: lobby}),
		zerolog.Nop(), &fakeSink{}, time.Now())
	if err == nil {
		t.Fatalf("expected context error")
	}
	if len(snap.Players) != 0 {
		t.Fatalf("no player should run after cancel: %+v", snap.Players)
	}
}
