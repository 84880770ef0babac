// internal/index/replacers.go
package index

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Masterminds/sprig/v3"
)

// ---- FRAGMENT TEMPLATES ----

var fragments = template.Must(template.New("index").Funcs(sprig.HtmlFuncMap()).Parse(`
{{- define "header" -}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
</head>
<body>
<h1>{{ .Title }}</h1>
{{ end -}}

{{- define "players" -}}
<table>
<tr><th>Player</th><th>Model</th><th>Status</th><th>Sections</th></tr>
{{- range .Rows }}
<tr class="{{ .Status | lower }}">
<td>{{ if .Link }}<a href="{{ .Link }}">{{ .Name }}</a>{{ else }}{{ .Name }}{{ end }}</td>
<td>{{ .Model }}</td>
<td>{{ .Status }}{{ if .Error }}: {{ .Error | trunc 200 }}{{ end }}</td>
<td>{{ join ", " .Sections }}</td>
</tr>
{{- end }}
</table>
{{ end -}}

{{- define "footer" -}}
<footer>run {{ .RunID }} at {{ dateInZone "2006-01-02T15:04:05Z07:00" .GeneratedAt "UTC" }}</footer>
</body>
</html>
{{ end -}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("index: %s: %w", name, err)
	}
	return buf.String(), nil
}

// ---- HEADER ----

// Header opens the document.
type Header struct {
	Title string
}

func (h Header) Replace(current string) (string, error) {
	s, err := render("header", h)
	if err != nil {
		return "", err
	}
	return current + s, nil
}

// ---- PLAYERS ----

// Row is one line of the player table.
type Row struct {
	Name     string
	Model    string
	Status   string
	Link     string
	Error    string
	Sections []string
}

// PlayerTable lists generated players in the given order.
type PlayerTable struct {
	Rows []Row
}

func (p PlayerTable) Replace(current string) (string, error) {
	s, err := render("players", p)
	if err != nil {
		return "", err
	}
	return current + s, nil
}

// ---- FOOTER ----

// Footer closes the document.
type Footer struct {
	RunID       string
	GeneratedAt time.Time
}

func (f Footer) Replace(current string) (string, error) {
	s, err := render("footer", f)
	if err != nil {
		return "", err
	}
	return current + s, nil
}
