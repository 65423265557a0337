//go:build darwin

package fsutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data to disk.
//
// On macOS, F_FULLFSYNC ensures data reaches the physical disk, not just the
// drive cache. Filesystems that reject it fall back to regular fsync.
func fdatasync(f *os.File) error {
	fd := int(f.Fd())
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0); err == nil {
		return nil
	}
	return unix.Fsync(fd)
}
