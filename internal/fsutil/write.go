// Package fsutil writes files durably: data is staged in a sibling temp file,
// flushed to stable storage, and renamed over the destination.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joshuapare/treekit/internal/logger"
)

// WriteFile atomically replaces path with data.
//
// Readers see either the previous content or the complete new content, never
// a partially written file.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := fdatasync(tmp); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("rename %s -> %s: %w", tmpName, path, err)
	}
	committed = true

	logger.Debug("wrote file", "path", path, "bytes", len(data))
	return nil
}
