// internal/config/validate.go
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tamzrod/signage-configgen/internal/player"
	"github.com/tamzrod/signage-configgen/internal/store"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}

	// ------------------------------------------------------------
	// FIELD RULES (struct tags)
	// ------------------------------------------------------------

	if err := structValidator().Struct(cfg); err != nil {
		var ves validator.ValidationErrors
		if errors.As(err, &ves) && len(ves) > 0 {
			fe := ves[0]
			return fmt.Errorf("config: %s: failed %q rule", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("config: %w", err)
	}

	g := cfg.Generator

	if len(g.Players) == 0 && len(g.Discover) == 0 {
		return errors.New("config: no players and no discover patterns defined")
	}

	// ------------------------------------------------------------
	// MODELS
	// ------------------------------------------------------------

	for _, d := range g.Discover {
		if err := checkModel(d.Model); err != nil {
			return fmt.Errorf("discover %q: %w", d.Pattern, err)
		}
	}

	// ------------------------------------------------------------
	// PLAYERS: identity and models
	// ------------------------------------------------------------

	// key = id
	ids := make(map[string]struct{})

	for _, p := range g.Players {
		if _, exists := ids[p.ID]; exists {
			return fmt.Errorf("player %q: duplicate id", p.ID)
		}
		ids[p.ID] = struct{}{}

		if err := checkModel(p.Model); err != nil {
			return fmt.Errorf("player %q: %w", p.ID, err)
		}

		if p.Output != "" && !filepath.IsLocal(p.Output) {
			return fmt.Errorf("player %q: output %q must be a relative path inside output_dir", p.ID, p.Output)
		}
	}

	return checkOutputs(g)
}

// checkOutputs rejects two outputs sharing one file, and a file sitting
// where another output needs a directory. Players without an explicit
// output claim <id>/<document file>; with no model in the job every
// family's document file is claimed.
func checkOutputs(g GeneratorConfig) error {
	// key = cleaned output path relative to output_dir
	outputOwner := make(map[string]string)

	claim := func(rel, owner string) error {
		key := filepath.Clean(rel)
		if prev, exists := outputOwner[key]; exists {
			return fmt.Errorf("output collision: %s used by %s and %s", key, owner, prev)
		}
		outputOwner[key] = owner
		return nil
	}

	if g.Index.Enabled {
		if err := claim(g.Index.File, "index page"); err != nil {
			return err
		}
	}
	if g.Report.Enabled {
		if err := claim(g.Report.File, "report"); err != nil {
			return err
		}
	}

	// Explicit outputs first so a default path never shadows them.
	for _, p := range g.Players {
		if p.Output == "" {
			continue
		}
		if err := claim(p.Output, fmt.Sprintf("player %q", p.ID)); err != nil {
			return err
		}
	}

	for _, p := range g.Players {
		if p.Output != "" {
			continue
		}
		files, err := documentFiles(p.Model)
		if err != nil {
			return fmt.Errorf("player %q: %w", p.ID, err)
		}
		for _, f := range files {
			if err := claim(filepath.Join(p.ID, f), fmt.Sprintf("player %q", p.ID)); err != nil {
				return err
			}
		}
	}

	keys := make([]string, 0, len(outputOwner))
	for k := range outputOwner {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for dir := filepath.Dir(k); dir != "."; dir = filepath.Dir(dir) {
			if prev, exists := outputOwner[dir]; exists {
				return fmt.Errorf(
					"output collision: %s of %s is a directory of %s",
					dir,
					prev,
					outputOwner[k],
				)
			}
		}
	}

	return nil
}

// documentFiles returns the default document file names a player of model
// may write. An empty model yields the files of every family.
func documentFiles(model string) ([]string, error) {
	var families []player.Family
	if model == "" {
		seen := make(map[player.Family]struct{})
		for _, m := range player.All() {
			f := m.Family()
			if _, ok := seen[f]; ok || f == player.FamilyNone {
				continue
			}
			seen[f] = struct{}{}
			families = append(families, f)
		}
	} else {
		m, err := player.Parse(model)
		if err != nil {
			return nil, err
		}
		families = []player.Family{m.Family()}
	}

	var files []string
	for _, f := range families {
		t, err := store.Seed(string(f))
		if err != nil {
			return nil, err
		}
		files = append(files, t.File)
	}
	return files, nil
}

// checkModel accepts an empty name (resolved later from the data file).
func checkModel(name string) error {
	if name == "" {
		return nil
	}
	m, err := player.Parse(name)
	if err != nil {
		return err
	}
	if m == player.Unknown {
		return fmt.Errorf("model %q is not generatable", name)
	}
	return nil
}
