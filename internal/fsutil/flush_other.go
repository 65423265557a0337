//go:build !linux && !freebsd && !darwin && !windows

package fsutil

import "os"

// fdatasync falls back to os.File.Sync on platforms without a dedicated call.
func fdatasync(f *os.File) error {
	return f.Sync()
}
