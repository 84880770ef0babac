// internal/generator/chains.go
package generator

import (
	"fmt"

	"github.com/tamzrod/signage-configgen/internal/player"
)

// chains maps each model to its ordered stage list.
// Base always comes first; UNKNOWN has no entry.
var chains = map[player.Model][]Stage{
	player.Garlic:       {baseStage, iadeaStage, garlicStage},
	player.IAdeaXMP1X0:  {baseStage, iadeaStage},
	player.IAdeaXMP2X00: {baseStage, iadeaStage},
	player.IAdeaXMP3X0:  {baseStage, iadeaStage},
	player.IAdeaXDS1X0:  {baseStage, iadeaStage},
	player.IAdeaXDS1X8:  {baseStage, iadeaStage},
	player.SpinetixHMP:  {baseStage},
	player.Qbic:         {baseStage},
	player.Compatible:   {baseStage},
}

// Stages returns a copy of the stage chain for m.
func Stages(m player.Model) ([]Stage, error) {
	stages, ok := chains[m]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedModel, m)
	}
	return append([]Stage(nil), stages...), nil
}

// StageNames returns the stage names of m's chain, for logs and reports.
func StageNames(m player.Model) []string {
	stages := chains[m]
	out := make([]string, 0, len(stages))
	for _, s := range stages {
		out = append(out, s.Name)
	}
	return out
}
