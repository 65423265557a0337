//go:build windows

package fsutil

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync flushes file data to disk using FlushFileBuffers.
func fdatasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
