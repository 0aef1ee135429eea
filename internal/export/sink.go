// Package export delivers finished worksheet artifacts to the user.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink accepts a finished artifact and delivers it somewhere useful.
// The producer only constructs the payload; delivery is the sink's
// problem.
type Sink interface {
	Deliver(filename, mimeType string, content []byte) error
}

// FileSink writes artifacts into a directory.
type FileSink struct {
	Dir string
}

func (f FileSink) Deliver(filename, _ string, content []byte) error {
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(f.Dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
