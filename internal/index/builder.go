// internal/index/builder.go
package index

// Replacer contributes one fragment to the index being built.
// It receives the output accumulated so far and returns the new output.
type Replacer interface {
	Replace(current string) (string, error)
}

// ReplacerFunc adapts a function to Replacer.
type ReplacerFunc func(current string) (string, error)

func (f ReplacerFunc) Replace(current string) (string, error) {
	return f(current)
}

// Builder folds its replacers left to right over the empty string.
// Registration order is kept; duplicates run as many times as added.
type Builder struct {
	replacers []Replacer
}

func NewBuilder() *Builder {
	return &Builder{}
}

// AddReplacer registers r after all previously added replacers.
func (b *Builder) AddReplacer(r Replacer) *Builder {
	b.replacers = append(b.replacers, r)
	return b
}

// BuildIndex runs the chain. The first replacer error is returned as is,
// with no partial output.
func (b *Builder) BuildIndex() (string, error) {
	out := ""
	for _, r := range b.replacers {
		next, err := r.Replace(out)
		if err != nil {
			return "", err
		}
		out = next
	}
	return out, nil
}
