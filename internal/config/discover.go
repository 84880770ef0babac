// internal/config/discover.go
package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves relative paths against baseDir (the job file directory)
// and appends one player per file matched by each discover pattern.
// Files already named by an explicit player are not added twice.
// It must run before Validate so discovered players are validated too.
func Expand(cfg *Config, baseDir string) error {
	if cfg == nil {
		return nil
	}
	g := &cfg.Generator

	g.OutputDir = resolve(baseDir, g.OutputDir)

	taken := make(map[string]struct{})
	for i := range g.Players {
		p := &g.Players[i]
		p.Data = resolve(baseDir, p.Data)
		taken[p.Data] = struct{}{}
	}

	for _, d := range g.Discover {
		pattern := resolve(baseDir, d.Pattern)

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("discover %q: %w", d.Pattern, err)
		}
		sort.Strings(matches)

		for _, m := range matches {
			if _, exists := taken[m]; exists {
				continue
			}
			taken[m] = struct{}{}

			base := filepath.Base(m)
			g.Players = append(g.Players, PlayerConfig{
				ID:    strings.TrimSuffix(base, filepath.Ext(base)),
				Model: d.Model,
				Data:  m,
			})
		}
	}

	return nil
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, p)
}
