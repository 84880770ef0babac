// internal/render/render.go
package render

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"gopkg.in/ini.v1"

	"github.com/tamzrod/signage-configgen/internal/store"
)

//go:embed documents/*.tmpl
var documentFS embed.FS

var documents = template.Must(
	template.New("documents").
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"xml": escapeXML}).
		Option("missingkey=zero").
		ParseFS(documentFS, "documents/*.tmpl"),
)

// Render turns a filled Template into the device document bytes.
func Render(t store.Template) ([]byte, error) {
	switch t.Format {
	case store.FormatXML:
		return renderXML(t)
	case store.FormatINI:
		return renderINI(t)
	default:
		return nil, fmt.Errorf("render: template %q: unsupported format %q", t.Name, t.Format)
	}
}

// ---- XML ----

// view is what document templates see.
type view struct {
	store.Template
}

// First returns block 0 of section, or an empty block.
func (v view) First(section string) store.Block {
	blocks := v.Blocks(section)
	if len(blocks) == 0 {
		return store.Block{}
	}
	return blocks[0]
}

// All returns every block of section.
func (v view) All(section string) []store.Block {
	return v.Blocks(section)
}

func renderXML(t store.Template) ([]byte, error) {
	doc := documents.Lookup(t.Document)
	if doc == nil {
		return nil, fmt.Errorf("render: template %q: unknown document %q", t.Name, t.Document)
	}

	var buf bytes.Buffer
	if err := doc.Execute(&buf, view{t}); err != nil {
		return nil, fmt.Errorf("render: template %q: %w", t.Name, err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// ---- INI ----

// renderINI writes one INI section per block. The second and later blocks
// of a section are named section.1, section.2, ...
func renderINI(t store.Template) ([]byte, error) {
	f := ini.Empty()

	for _, name := range t.SectionNames() {
		for i, b := range t.Blocks(name) {
			secName := name
			if i > 0 {
				secName = fmt.Sprintf("%s.%d", name, i)
			}

			sec, err := f.NewSection(secName)
			if err != nil {
				return nil, fmt.Errorf("render: template %q: section %s: %w", t.Name, secName, err)
			}
			for _, k := range b.Keys() {
				if _, err := sec.NewKey(k, b[k]); err != nil {
					return nil, fmt.Errorf("render: template %q: key %s.%s: %w", t.Name, secName, k, err)
				}
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render: template %q: %w", t.Name, err)
	}
	return buf.Bytes(), nil
}
