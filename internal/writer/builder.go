// internal/writer/builder.go
package writer

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	cfg "github.com/tamzrod/signage-configgen/internal/config"
)

// BuildPlan converts one player config into a document Plan.
// documentFile is the base template's output file name.
// Assumes config has already passed validation.
func BuildPlan(p cfg.PlayerConfig, outputDir, documentFile string) (Plan, error) {
	if p.ID == "" {
		return Plan{}, errors.New("writer: player.id required")
	}

	rel := p.Output
	if rel == "" {
		if documentFile == "" {
			return Plan{}, fmt.Errorf("writer: player %q: no document file name", p.ID)
		}
		rel = path.Join(p.ID, documentFile)
	}

	return BuildFilePlan(p.ID, outputDir, rel)
}

// BuildFilePlan plans a file at rel inside outputDir.
func BuildFilePlan(id, outputDir, rel string) (Plan, error) {
	if outputDir == "" {
		return Plan{}, errors.New("writer: output dir required")
	}
	local := filepath.FromSlash(rel)
	if !filepath.IsLocal(local) {
		return Plan{}, fmt.Errorf("writer: %s: path %q escapes output dir", id, rel)
	}

	return Plan{
		ID:        id,
		OutputDir: outputDir,
		Rel:       filepath.ToSlash(filepath.Clean(local)),
		Path:      filepath.Join(outputDir, local),
	}, nil
}
