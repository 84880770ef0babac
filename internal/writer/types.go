// internal/writer/types.go
package writer

// Plan is the fully-built destination of one output file.
type Plan struct {
	ID        string // player id, or "index" / "report"
	OutputDir string
	Rel       string // path relative to OutputDir, slash separated
	Path      string // absolute or OutputDir-joined path
}

// Writer delivers one document to its planned destination.
type Writer interface {
	Write(doc []byte) error
}

// Sink is the exact filesystem contract writers use.
type Sink interface {
	WriteFile(path string, data []byte) error
}
