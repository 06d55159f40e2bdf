//go:build linux || freebsd

package syncsink

import (
	"os"

	"golang.org/x/sys/unix"
)

// fdatasync flushes f's data (not necessarily its metadata) to disk.
// Linux and FreeBSD's fdatasync provides sufficient durability guarantees.
func fdatasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}
