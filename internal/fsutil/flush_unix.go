//go:build linux || freebsd

package fsutil

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes file data to disk.
//
// On Linux/FreeBSD, fdatasync() provides sufficient guarantees.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
