//go:build linux || freebsd || darwin

package syncsink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSyncOnOrdinaryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte{1, 2, 3}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := Sync(f); err != nil {
		t.Fatalf("Sync: %v", err)
	}
}
