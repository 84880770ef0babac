// internal/config/normalize.go
package config

import (
	"path/filepath"
	"strings"
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	g := &cfg.Generator

	if strings.TrimSpace(g.Index.Title) == "" {
		g.Index.Title = "Players"
	}

	for i := range g.Players {
		p := &g.Players[i]

		// Model names are matched loosely; store the trimmed form only.
		p.Model = strings.TrimSpace(p.Model)

		if p.Output != "" {
			p.Output = filepath.Clean(p.Output)
		}
	}
}
