// internal/generator/stage.go
package generator

import (
	"fmt"

	"github.com/tamzrod/signage-configgen/internal/configdata"
	"github.com/tamzrod/signage-configgen/internal/store"
)

// Stage is one transformation layer of a generator chain.
// Apply must not modify its input Template; it returns the next one.
type Stage struct {
	Name string

	// Required lists the keys this stage cannot run without.
	// nil means none.
	Required func(d configdata.Data) []string

	Apply func(d configdata.Data, t store.Template) (store.Template, error)
}

// ---- OPTIONAL SECTIONS ----

// OptionalSection appends one block to Section when every key in Keys is
// present. Partial presence is skipped silently.
type OptionalSection struct {
	Section string
	Keys    []string
	Build   func(d configdata.Data) (store.Block, error)
}

// optionalStage builds a Stage evaluating sections in table order.
func optionalStage(name string, sections []OptionalSection) Stage {
	return Stage{
		Name: name,
		Apply: func(d configdata.Data, t store.Template) (store.Template, error) {
			out := t.Clone()
			for _, s := range sections {
				if !d.HasAll(s.Keys...) {
					continue
				}
				b, err := s.Build(d)
				if err != nil {
					return store.Template{}, fmt.Errorf("generator: stage %s: section %s: %w", name, s.Section, err)
				}
				out.Append(s.Section, b)
			}
			return out, nil
		},
	}
}

// scalar is a Build func copying one key verbatim into placeholder.
func scalar(key, placeholder string) func(configdata.Data) (store.Block, error) {
	return func(d configdata.Data) (store.Block, error) {
		v, err := d.String(key)
		if err != nil {
			return nil, err
		}
		return store.Block{placeholder: v}, nil
	}
}
