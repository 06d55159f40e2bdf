package reader

import (
	"bytes"
	"errors"
	"testing"

	"github.com/cdfkit/cdfkit/pkg/types"
)

func TestReadEmptyDatasetScenarioS1(t *testing.T) {
	raw := []byte{
		0x43, 0x44, 0x46, 0x01, // CDF + classic
		0x00, 0x00, 0x00, 0x00, // numrecs
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent dim_array
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent gattr_array
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent var_array
	}
	ds, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if ds.Version != types.Classic {
		t.Errorf("version = %v, want classic", ds.Version)
	}
	if len(ds.Dims) != 0 || len(ds.Attrs) != 0 || len(ds.Vars) != 0 {
		t.Errorf("expected all-empty dataset, got %+v", ds)
	}
}

func TestReadBadMagic(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x01, 0, 0, 0, 0}
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, types.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestReadUnsupportedVersion(t *testing.T) {
	raw := []byte{0x43, 0x44, 0x46, 0x09, 0, 0, 0, 0}
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, types.ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestReadNegativeNumrecsRejected(t *testing.T) {
	raw := []byte{
		0x43, 0x44, 0x46, 0x01,
		0xFF, 0xFF, 0xFF, 0xFF, // numrecs == -1, also the streaming sentinel
	}
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, types.ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}

func TestReadTruncatedInputIsUnexpectedEof(t *testing.T) {
	raw := []byte{0x43, 0x44, 0x46, 0x01, 0x00, 0x00}
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, types.ErrUnexpectedEOF) {
		t.Fatalf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReadDimArrayScenarioS2(t *testing.T) {
	raw := []byte{
		0x43, 0x44, 0x46, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x01, // DIMENSION, nelems=1
		0x00, 0x00, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, // name "x" padded
		0x00, 0x00, 0x00, 0x03, // length=3
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent gattr_array
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent var_array
	}
	ds, err := Read(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(ds.Dims) != 1 || ds.Dims[0].Name != "x" || ds.Dims[0].Length != 3 {
		t.Fatalf("dims = %+v", ds.Dims)
	}
}

func TestReadDanglingDimidIsModelInvariant(t *testing.T) {
	raw := []byte{
		0x43, 0x44, 0x46, 0x01,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent dim_array
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent gattr_array
		0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x01, // VARIABLE, nelems=1
		0x00, 0x00, 0x00, 0x01, 'v', 0x00, 0x00, 0x00, // name "v"
		0x00, 0x00, 0x00, 0x01, // ndims=1
		0x00, 0x00, 0x00, 0x00, // dimid 0 -- but there are no dims declared
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // absent var attrs
		0x00, 0x00, 0x00, 0x06, // type DOUBLE
		0x00, 0x00, 0x00, 0x08, // vsize
		0x00, 0x00, 0x00, 0x20, // begin
	}
	_, err := Read(bytes.NewReader(raw))
	if !errors.Is(err, types.ErrModelInvariant) {
		t.Fatalf("expected ErrModelInvariant, got %v", err)
	}
}
