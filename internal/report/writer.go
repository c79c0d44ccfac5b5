package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// Writer saves one file per result circuit into an output directory. The
// directory is created if needed and held under an exclusive file lock for
// the writer's lifetime, so two concurrent runs cannot interleave their
// files. Every writer carries a run ID recorded in each saved file.
type Writer struct {
	dir   string
	runID string
	lock  *flock.Flock
}

// NewWriter prepares the output directory and acquires its lock.
// Callers must Close the writer to release the lock.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, ".ohm.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring output lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("output directory %s is in use by another run", dir)
	}

	return &Writer{dir: dir, runID: uuid.NewString(), lock: lock}, nil
}

// RunID returns the identifier stamped into this writer's files.
func (w *Writer) RunID() string {
	return w.runID
}

// Write saves one report as circuit_<index>.txt and returns the file path.
func (w *Writer) Write(index int, report string) (string, error) {
	path := filepath.Join(w.dir, fmt.Sprintf("circuit_%d.txt", index))
	content := fmt.Sprintf("Run: %s\n\n%s\n", w.runID, report)

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// Close releases the output directory lock.
func (w *Writer) Close() error {
	return w.lock.Unlock()
}
