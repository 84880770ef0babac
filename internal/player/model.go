// internal/player/model.go
package player

import (
	"fmt"
	"strings"
)

// Model identifies a supported player hardware/software variant.
// The set is closed.
type Model int

const (
	Unknown Model = iota
	Garlic
	IAdeaXMP1X0
	IAdeaXMP2X00
	IAdeaXMP3X0
	IAdeaXDS1X0
	IAdeaXDS1X8
	SpinetixHMP
	Qbic
	Compatible
)

// ---- FAMILIES ----

// Family groups models sharing one base template.
type Family string

const (
	FamilyNone       Family = ""
	FamilyIAdea      Family = "iadea"
	FamilySmil       Family = "smil"
	FamilyCompatible Family = "compatible"
)

var names = map[Model]string{
	Unknown:      "UNKNOWN",
	Garlic:       "GARLIC",
	IAdeaXMP1X0:  "IADEA_XMP1X0",
	IAdeaXMP2X00: "IADEA_XMP2X00",
	IAdeaXMP3X0:  "IADEA_XMP3X0",
	IAdeaXDS1X0:  "IADEA_XDS1X0",
	IAdeaXDS1X8:  "IADEA_XDS1X8",
	SpinetixHMP:  "SPINETIX_HMP",
	Qbic:         "QBIC",
	Compatible:   "COMPATIBLE",
}

// All returns every model, UNKNOWN included, in declaration order.
func All() []Model {
	out := make([]Model, 0, len(names))
	for m := Unknown; m <= Compatible; m++ {
		out = append(out, m)
	}
	return out
}

func (m Model) String() string {
	if n, ok := names[m]; ok {
		return n
	}
	return names[Unknown]
}

// Family returns the base template family of the model.
// UNKNOWN has no family.
func (m Model) Family() Family {
	switch m {
	case Garlic, IAdeaXMP1X0, IAdeaXMP2X00, IAdeaXMP3X0, IAdeaXDS1X0, IAdeaXDS1X8:
		return FamilyIAdea
	case SpinetixHMP:
		return FamilySmil
	case Qbic, Compatible:
		return FamilyCompatible
	default:
		return FamilyNone
	}
}

// Parse resolves a model name. Matching ignores case, and '-' equals '_'.
func Parse(s string) (Model, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	key = strings.ReplaceAll(key, "-", "_")

	for m, n := range names {
		if n == key {
			return m, nil
		}
	}
	return Unknown, fmt.Errorf("player: unknown model %q", s)
}
