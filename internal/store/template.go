// internal/store/template.go
package store

import (
	"sort"
)

// Block is one placeholder → value group inside a section.
type Block map[string]string

// Template is the nested section store filled by the generator stages.
// Format and Document select the renderer; File is the output file name.
type Template struct {
	Name     string             `yaml:"name"`
	Format   string             `yaml:"format"`
	Document string             `yaml:"document"`
	File     string             `yaml:"file"`
	Sections map[string][]Block `yaml:"sections"`
}

// ---- FORMATS ----

const (
	FormatXML = "xml"
	FormatINI = "ini"
)

// Clone returns a deep copy. Stages work on clones so the input is never shared.
func (t Template) Clone() Template {
	out := t
	out.Sections = make(map[string][]Block, len(t.Sections))
	for name, blocks := range t.Sections {
		cp := make([]Block, len(blocks))
		for i, b := range blocks {
			nb := make(Block, len(b))
			for k, v := range b {
				nb[k] = v
			}
			cp[i] = nb
		}
		out.Sections[name] = cp
	}
	return out
}

// Set writes key=value into block 0 of section, creating the block if needed.
// Repeated calls overwrite.
func (t *Template) Set(section, key, value string) {
	if t.Sections == nil {
		t.Sections = make(map[string][]Block)
	}
	blocks := t.Sections[section]
	if len(blocks) == 0 {
		blocks = []Block{{}}
	}
	if blocks[0] == nil {
		blocks[0] = Block{}
	}
	blocks[0][key] = value
	t.Sections[section] = blocks
}

// Append adds b as a new block at the end of section.
func (t *Template) Append(section string, b Block) {
	if t.Sections == nil {
		t.Sections = make(map[string][]Block)
	}
	t.Sections[section] = append(t.Sections[section], b)
}

// Has reports whether section holds at least one block.
func (t Template) Has(section string) bool {
	return len(t.Sections[section]) > 0
}

// Blocks returns the blocks of section (nil if absent).
func (t Template) Blocks(section string) []Block {
	return t.Sections[section]
}

// SectionNames returns populated section names, sorted.
func (t Template) SectionNames() []string {
	names := make([]string, 0, len(t.Sections))
	for name, blocks := range t.Sections {
		if len(blocks) == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keys returns the keys of b, sorted.
func (b Block) Keys() []string {
	keys := make([]string, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
