// internal/generator/generator.go
package generator

import (
	"fmt"

	"github.com/tamzrod/signage-configgen/internal/configdata"
	"github.com/tamzrod/signage-configgen/internal/player"
	"github.com/tamzrod/signage-configgen/internal/store"
)

// Generator fills one Template for one player.
// Create one per request and discard it after reading the Template.
// Replace is not guarded against reuse: a second call appends the optional
// blocks again.
type Generator struct {
	data   configdata.Data
	stages []Stage
	tpl    store.Template
}

// New resolves the stage chain of model and seeds the Template from the
// model family's base template.
func New(model player.Model, data configdata.Data) (*Generator, error) {
	stages, err := Stages(model)
	if err != nil {
		return nil, err
	}

	tpl, err := store.Seed(string(model.Family()))
	if err != nil {
		return nil, fmt.Errorf("generator: %s: %w", model, err)
	}

	return &Generator{
		data:   data,
		stages: stages,
		tpl:    tpl,
	}, nil
}

// Replace validates the input and runs every stage in chain order.
// On error the Template is left as it was before the call.
func (g *Generator) Replace() (*Generator, error) {
	if err := Check(g.stages, g.data); err != nil {
		return g, err
	}

	tpl := g.tpl
	for _, s := range g.stages {
		next, err := s.Apply(g.data, tpl)
		if err != nil {
			return g, err
		}
		tpl = next
	}

	g.tpl = tpl
	return g, nil
}

// Template returns the current Template.
func (g *Generator) Template() store.Template {
	return g.tpl
}

// Check fails on the first missing required key, in stage order, then on
// any invalid value.
func Check(stages []Stage, d configdata.Data) error {
	for _, s := range stages {
		if s.Required == nil {
			continue
		}
		for _, k := range s.Required(d) {
			if !d.Has(k) {
				return &MissingFieldError{Stage: s.Name, Key: k}
			}
		}
	}
	return configdata.Validate(d)
}

// Generate runs a single-use generator for model over d.
func Generate(model player.Model, d configdata.Data) (store.Template, error) {
	g, err := New(model, d)
	if err != nil {
		return store.Template{}, err
	}
	if _, err := g.Replace(); err != nil {
		return store.Template{}, err
	}
	return g.Template(), nil
}
