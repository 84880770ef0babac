// internal/writer/writer.go
package writer

import (
	"fmt"
	"os"
	"path/filepath"
)

type fileWriter struct {
	plan Plan
	sink Sink
}

func New(plan Plan, sink Sink) Writer {
	return &fileWriter{
		plan: plan,
		sink: sink,
	}
}

func (w *fileWriter) Write(doc []byte) error {
	if w.sink == nil {
		return fmt.Errorf("writer: %s: missing sink", w.plan.ID)
	}
	if err := w.sink.WriteFile(w.plan.Path, doc); err != nil {
		return fmt.Errorf("writer: %s: %w", w.plan.ID, err)
	}
	return nil
}

// ---- FILESYSTEM SINK ----

// FileSink writes through a temp file and rename, so readers never see a
// half-written document.
type FileSink struct {
	Perm os.FileMode // 0 => 0o644
}

func (s FileSink) WriteFile(path string, data []byte) error {
	perm := s.Perm
	if perm == 0 {
		perm = 0o644
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	// On any failure below the temp file is removed; after rename this is a no-op.
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
