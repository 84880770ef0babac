// internal/store/seed.go
package store

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seeds/*.yaml
var seedFS embed.FS

// Seed returns a fresh Template loaded from the base template of family.
// Every call decodes again; callers own the result.
func Seed(family string) (Template, error) {
	if family == "" {
		return Template{}, fmt.Errorf("store: empty template family")
	}

	data, err := seedFS.ReadFile("seeds/" + family + ".yaml")
	if err != nil {
		return Template{}, fmt.Errorf("store: no base template for family %q: %w", family, err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Template{}, fmt.Errorf("store: decode base template %q: %w", family, err)
	}

	switch t.Format {
	case FormatXML:
		if t.Document == "" {
			return Template{}, fmt.Errorf("store: base template %q: xml format requires document", family)
		}
	case FormatINI:
	default:
		return Template{}, fmt.Errorf("store: base template %q: unsupported format %q", family, t.Format)
	}

	if t.Sections == nil {
		t.Sections = make(map[string][]Block)
	}
	return t, nil
}
