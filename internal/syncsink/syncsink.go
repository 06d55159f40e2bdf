// Package syncsink adds best-effort durability to a file-backed Write:
// writer.FileSink.Commit calls Sync on the temp file after writing the image
// and before renaming it into place, so the OS has flushed it to stable
// storage first.
package syncsink

import "os"

// Sync flushes f's data to disk with a platform-specific call (see
// sync_unix.go / sync_darwin.go / sync_windows.go).
func Sync(f *os.File) error {
	return fdatasync(f)
}
