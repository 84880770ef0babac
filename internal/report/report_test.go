// internal/report/report_test.go
package report

import (
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

func sample() Snapshot {
	s := New(time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC))
	s.Add(Entry{PlayerID: "lobby", Model: "GARLIC", Health: HealthOK, Output: "out/lobby/configuration.xml", Sections: []string{"identity", "network"}})
	s.Add(Entry{PlayerID: "hall", Model: "QBIC", Health: HealthError, Error: "missing field"})
	return s
}

func TestNew_RunID(t *testing.T) {
	a, b := New(time.Now()), New(time.Now())
	if _, err := uuid.Parse(a.RunID); err != nil {
		t.Fatalf("run id is not a uuid: %v", err)
	}
	if a.RunID == b.RunID {
		t.Fatalf("run ids must differ between runs")
	}
}

func TestCountsAndFailed(t *testing.T) {
	s := sample()
	ok, failed := s.Counts()
	if ok != 1 || failed != 1 {
		t.Fatalf("counts ok=%d failed=%d", ok, failed)
	}
	f := s.Failed()
	if len(f) != 1 || f[0].PlayerID != "hall" {
		t.Fatalf("failed=%v", f)
	}
}

func TestEncode_YAML(t *testing.T) {
	b, err := Encode(sample(), FormatYAML)
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	var doc struct {
		Players []struct {
			ID     string `yaml:"id"`
			Health string `yaml:"health"`
			Error  string `yaml:"error"`
		} `yaml:"players"`
	}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("yaml decode err=%v\n%s", err, b)
	}
	if len(doc.Players) != 2 || doc.Players[0].Health != "ok" || doc.Players[1].Health != "error" {
		t.Fatalf("unexpected players:\n%s", b)
	}
	if strings.Contains(string(b), "output: \"\"") {
		t.Fatalf("empty output should be omitted:\n%s", b)
	}
}

func TestEncode_JSON(t *testing.T) {
	b, err := Encode(sample(), FormatJSON)
	if err != nil {
		t.Fatalf("Encode err=%v", err)
	}

	var back Snapshot
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("json decode err=%v\n%s", err, b)
	}
	if back.Players[1].Health != HealthError {
		t.Fatalf("health did not survive encoding: %v", back.Players[1].Health)
	}
	if !strings.Contains(string(b), `"health": "ok"`) {
		t.Fatalf("health should encode by name:\n%s", b)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if _, err := Encode(sample(), "toml"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}
