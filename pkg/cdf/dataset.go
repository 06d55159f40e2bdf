// Package cdf is the public façade (spec component C7): a builder API for
// assembling a Dataset in memory, plus Read and Write entry points that wire
// together internal/reader, internal/planner, and internal/writer. Callers
// that only need the data model types should use pkg/types directly; this
// package adds the mutation operations and the byte-level Read/Write pair.
package cdf

import (
	"fmt"

	"github.com/cdfkit/cdfkit/internal/reader"
	"github.com/cdfkit/cdfkit/internal/writer"
	"github.com/cdfkit/cdfkit/pkg/types"
)

// Re-exported so callers of this package rarely need to import pkg/types
// directly for the common cases.
type (
	Dataset    = types.Dataset
	Dimension  = types.Dimension
	Variable   = types.Variable
	Attribute  = types.Attribute
	Value      = types.Value
	NcType     = types.NcType
	CdfVersion = types.CdfVersion
	DimHandle  = types.DimHandle
	VarHandle  = types.VarHandle
)

// Primitive type tags, re-exported for convenience.
const (
	Byte   = types.Byte
	Char   = types.Char
	Short  = types.Short
	Int    = types.Int
	Float  = types.Float
	Double = types.Double
)

// On-disk version selectors, re-exported for convenience.
const (
	Classic = types.Classic
	X64     = types.X64
)

// New returns an empty Dataset targeting the given on-disk version.
func New(version CdfVersion) *Dataset {
	return types.NewDataset(version)
}

// Read parses src into a Dataset. src must support both sequential read and
// absolute-position seek; see pkg/types.Source.
func Read(src types.Source) (*Dataset, error) {
	return reader.Read(src)
}

// Write plans and serializes ds to dst. ds is mutated in place by planning
// (vsize, begin, and variable order are recomputed); callers that need the
// pre-write variable order should copy it first.
func Write(dst types.Sink, ds *Dataset) error {
	return writer.Write(dst, ds)
}

// WriteFile plans and serializes ds to path, publishing it atomically: the
// image is buffered, fsynced to a sibling temp file, and renamed into place,
// so a crash or a failed Write never leaves a half-written file at path.
func WriteFile(path string, ds *Dataset) error {
	sink := &writer.FileSink{Path: path}
	if err := writer.Write(sink, ds); err != nil {
		return err
	}
	return sink.Commit()
}

// AddDim appends a new dimension and returns its handle. A length of 0
// declares it the record (unlimited) dimension; if the dataset already had
// one, the prior record dimension is demoted to a fixed dimension of
// defaultRecordLength, since a file may only ever carry one record
// dimension at a time on disk.
func AddDim(ds *Dataset, name string, length int32, defaultRecordLength int32) (DimHandle, error) {
	if name == "" {
		return 0, fmt.Errorf("cdf: add_dim: %w", types.ErrModelInvariant)
	}
	if length == 0 {
		demoteRecordDim(ds, defaultRecordLength)
	}
	ds.Dims = append(ds.Dims, types.Dimension{Name: name, Length: length})
	return DimHandle(len(ds.Dims) - 1), nil
}

// SetUnlimited makes the dimension at h the record dimension, demoting any
// prior record dimension to defaultRecordLength.
func SetUnlimited(ds *Dataset, h DimHandle, defaultRecordLength int32) error {
	if int(h) < 0 || int(h) >= len(ds.Dims) {
		return fmt.Errorf("cdf: set_unlimited: %w", types.ErrModelInvariant)
	}
	demoteRecordDim(ds, defaultRecordLength)
	ds.Dims[h].Length = 0
	return nil
}

func demoteRecordDim(ds *Dataset, defaultRecordLength int32) {
	if i, ok := ds.RecordDimIndex(); ok {
		ds.Dims[i].Length = defaultRecordLength
	}
}

// GetDimByName looks up a dimension by name.
func GetDimByName(ds *Dataset, name string) (DimHandle, bool) {
	return ds.FindDim(name)
}

// GetDimByIndex validates and returns a handle for the dimension at index i.
func GetDimByIndex(ds *Dataset, i int) (DimHandle, bool) {
	if i < 0 || i >= len(ds.Dims) {
		return 0, false
	}
	return DimHandle(i), true
}

// AddVar appends a new, dimensionless variable of the given type and
// returns its handle. Use RedimVar to give it dimensions.
func AddVar(ds *Dataset, name string, t NcType) (VarHandle, error) {
	if name == "" {
		return 0, fmt.Errorf("cdf: add_var: %w", types.ErrModelInvariant)
	}
	if !t.IsPrimitive() {
		return 0, fmt.Errorf("cdf: add_var %q: %w", name, types.ErrUnsupportedType)
	}
	ds.Vars = append(ds.Vars, types.Variable{Name: name, Type: t})
	return VarHandle(len(ds.Vars) - 1), nil
}

// RedimVar replaces the dimids of the variable at h. By convention the
// record dimension, if any of dims names it, should be dims[0].
func RedimVar(ds *Dataset, h VarHandle, dims []DimHandle) error {
	if int(h) < 0 || int(h) >= len(ds.Vars) {
		return fmt.Errorf("cdf: redim_var: %w", types.ErrModelInvariant)
	}
	ids := make([]int32, len(dims))
	for i, d := range dims {
		if int(d) < 0 || int(d) >= len(ds.Dims) {
			return fmt.Errorf("cdf: redim_var %q: %w", ds.Vars[h].Name, types.ErrModelInvariant)
		}
		ids[i] = int32(d)
	}
	ds.Vars[h].DimIDs = ids
	return nil
}

// AttrTarget names where an attribute attaches: the dataset itself (global)
// or a specific variable.
type AttrTarget struct {
	Var   VarHandle
	IsVar bool
}

// Global is the AttrTarget for a dataset-level (non-variable) attribute.
var Global = AttrTarget{}

// VarTarget is the AttrTarget for the variable at h.
func VarTarget(h VarHandle) AttrTarget { return AttrTarget{Var: h, IsVar: true} }

// AddAttr attaches a named attribute, either to the dataset (Global) or to
// a variable (VarTarget(h)).
func AddAttr(ds *Dataset, target AttrTarget, name string, t NcType, values []Value) error {
	if name == "" {
		return fmt.Errorf("cdf: add_attr: %w", types.ErrModelInvariant)
	}
	if !t.IsPrimitive() {
		return fmt.Errorf("cdf: add_attr %q: %w", name, types.ErrUnsupportedType)
	}
	attr := types.Attribute{Name: name, Type: t, Values: values}
	if !target.IsVar {
		ds.Attrs = append(ds.Attrs, attr)
		return nil
	}
	if int(target.Var) < 0 || int(target.Var) >= len(ds.Vars) {
		return fmt.Errorf("cdf: add_attr %q: %w", name, types.ErrModelInvariant)
	}
	ds.Vars[target.Var].Attrs = append(ds.Vars[target.Var].Attrs, attr)
	return nil
}

// AddTextAttr is a convenience wrapper around AddAttr for CHAR attributes.
func AddTextAttr(ds *Dataset, target AttrTarget, name, text string) error {
	return AddAttr(ds, target, name, types.Char, []Value{types.TextValue(text)})
}
