package writer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cdfkit/cdfkit/internal/syncsink"
	"github.com/cdfkit/cdfkit/pkg/types"
)

// FileSink buffers a full CDF image in memory and publishes it to Path with
// a temp-file-plus-rename sequence, so a crash or a failed Write never
// leaves a half-written file at the final path.
type FileSink struct {
	Path string
	buf  bytes.Buffer
}

// Write implements types.Sink by buffering; nothing touches disk until Commit.
func (f *FileSink) Write(p []byte) (int, error) {
	return f.buf.Write(p)
}

// Commit flushes the buffered image to Path atomically via a sibling temp
// file, fsync, and rename.
func (f *FileSink) Commit() error {
	dir := filepath.Dir(f.Path)
	tmp, err := os.CreateTemp(dir, ".cdfkit-tmp-*")
	if err != nil {
		return fmt.Errorf("filesink: create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(f.buf.Bytes()); err != nil {
		return fmt.Errorf("filesink: write temp file: %w", err)
	}
	if err := syncsink.Sync(tmp); err != nil {
		return fmt.Errorf("filesink: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filesink: close temp file: %w", err)
	}
	tmp = nil

	if err := os.Rename(tmpPath, f.Path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("filesink: rename temp file: %w", err)
	}
	return nil
}

var _ types.Sink = (*FileSink)(nil)
