// internal/index/builder_test.go
package index

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func appendStr(s string) Replacer {
	return ReplacerFunc(func(cur string) (string, error) {
		return cur + s, nil
	})
}

func TestBuildIndex_Order(t *testing.T) {
	a, b := appendStr("a"), appendStr("b")

	got, err := NewBuilder().AddReplacer(a).AddReplacer(b).BuildIndex()
	if err != nil || got != "ab" {
		t.Fatalf("[A,B] = %q err=%v, want \"ab\"", got, err)
	}

	got, err = NewBuilder().AddReplacer(b).AddReplacer(a).BuildIndex()
	if err != nil || got != "ba" {
		t.Fatalf("[B,A] = %q err=%v, want \"ba\"", got, err)
	}
}

func TestBuildIndex_Empty(t *testing.T) {
	got, err := NewBuilder().BuildIndex()
	if err != nil || got != "" {
		t.Fatalf("empty builder = %q err=%v", got, err)
	}
}

func TestBuildIndex_DuplicatesRunTwice(t *testing.T) {
	a := appendStr("a")

	got, err := NewBuilder().AddReplacer(a).AddReplacer(a).BuildIndex()
	if err != nil || got != "aa" {
		t.Fatalf("got %q err=%v, want \"aa\"", got, err)
	}
}

func TestBuildIndex_SeesAccumulated(t *testing.T) {
	upper := ReplacerFunc(func(cur string) (string, error) {
		return strings.ToUpper(cur), nil
	})

	got, err := NewBuilder().AddReplacer(appendStr("x")).AddReplacer(upper).AddReplacer(appendStr("y")).BuildIndex()
	if err != nil || got != "Xy" {
		t.Fatalf("got %q err=%v, want \"Xy\"", got, err)
	}
}

func TestBuildIndex_ErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	calls := 0

	fail := ReplacerFunc(func(string) (string, error) { return "partial", boom })
	after := ReplacerFunc(func(cur string) (string, error) {
		calls++
		return cur, nil
	})

	got, err := NewBuilder().AddReplacer(appendStr("a")).AddReplacer(fail).AddReplacer(after).BuildIndex()
	if err != boom {
		t.Fatalf("expected the replacer error verbatim, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no partial output, got %q", got)
	}
	if calls != 0 {
		t.Fatalf("replacers after a failure must not run")
	}
}

func TestHTMLReplacers(t *testing.T) {
	at := time.Date(2026, 10, 14, 8, 30, 0, 0, time.UTC)

	out, err := NewBuilder().
		AddReplacer(Header{Title: "Players <all>"}).
		AddReplacer(PlayerTable{Rows: []Row{
			{Name: "lobby", Model: "GARLIC", Status: "ok", Link: "lobby/configuration.xml", Sections: []string{"identity", "volume"}},
			{Name: "hall", Model: "QBIC", Status: "error", Error: "missing field"},
		}}).
		AddReplacer(Footer{RunID: "run-1", GeneratedAt: at}).
		BuildIndex()
	if err != nil {
		t.Fatalf("BuildIndex err=%v", err)
	}

	want := []string{
		"<!DOCTYPE html>",
		"<title>Players &lt;all&gt;</title>",
		`<a href="lobby/configuration.xml">lobby</a>`,
		"<td>identity, volume</td>",
		"error: missing field",
		"run run-1 at 2026-10-14T08:30:00Z",
		"</html>",
	}
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Fatalf("output missing %q:\n%s", w, out)
		}
	}

	if strings.Index(out, "<!DOCTYPE") > strings.Index(out, "<table>") ||
		strings.Index(out, "<table>") > strings.Index(out, "<footer>") {
		t.Fatalf("fragments out of order:\n%s", out)
	}
}
