// Package mmapsrc opens a file as a memory-mapped, random-access
// types.Source, avoiding a full read into a heap buffer for large datasets.
// Like internal/mmfile in the teacher repo, there is no internal locking:
// the caller owns the Source's lifetime and must not mutate the underlying
// file while it's mapped.
package mmapsrc

import (
	"fmt"
	"io"
)

// Source is an io.ReadSeeker backed by mapped (or, on platforms without
// mmap, fully read) file bytes.
type Source struct {
	data    []byte
	pos     int64
	release func() error
}

// Open maps path into memory and returns a Source over its bytes.
func Open(path string) (*Source, error) {
	data, release, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("mmapsrc: open %s: %w", path, err)
	}
	return &Source{data: data, release: release}, nil
}

// Read implements io.Reader.
func (s *Source) Read(p []byte) (int, error) {
	if s.pos >= int64(len(s.data)) {
		return 0, io.EOF
	}
	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)
	return n, nil
}

// Seek implements io.Seeker.
func (s *Source) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = s.pos + offset
	case io.SeekEnd:
		abs = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("mmapsrc: invalid whence %d", whence)
	}
	if abs < 0 {
		return 0, fmt.Errorf("mmapsrc: negative seek position %d", abs)
	}
	s.pos = abs
	return abs, nil
}

// Close unmaps the underlying file. The Source must not be used afterward.
func (s *Source) Close() error {
	if s.release == nil {
		return nil
	}
	release := s.release
	s.release = nil
	return release()
}
