//go:build windows

package syncsink

import (
	"os"

	"golang.org/x/sys/windows"
)

// fdatasync flushes f's buffers via FlushFileBuffers, the closest Windows
// equivalent to fsync.
func fdatasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
