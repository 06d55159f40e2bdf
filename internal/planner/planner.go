// Package planner implements the offset planning pass (spec component C4):
// before any header byte is written, it computes each variable's vsize and
// absolute begin offset so the header's declarations agree with where
// payloads actually land.
package planner

import (
	"fmt"

	"github.com/cdfkit/cdfkit/internal/format"
	"github.com/cdfkit/cdfkit/pkg/types"
)

// Plan computes vsize and begin for every variable in ds and reorders
// ds.Vars into on-disk order: fixed variables first (in their original
// declaration order), then record variables (in their original declaration
// order). It mutates ds in place and is idempotent — planning an
// already-planned dataset recomputes the same values.
//
// Preconditions: every dimension has its final Length, and every variable
// has its final DimIDs, Type, Attrs, and Data.
func Plan(ds *types.Dataset) error {
	for i := range ds.Vars {
		vsize, err := VSize(ds, &ds.Vars[i])
		if err != nil {
			return err
		}
		ds.Vars[i].VSize = vsize
	}

	fixed, record := partition(ds)
	ds.Vars = append(fixed, record...)

	header := int64(format.HeaderSize(ds))
	cursor := header
	for i := range ds.Vars {
		ds.Vars[i].Offset = cursor
		cursor += int64(ds.Vars[i].VSize)
	}

	if ds.Version == types.Classic {
		for _, v := range ds.Vars {
			if v.Offset > format.ClassicOffsetMax {
				return fmt.Errorf("planner: variable %q: %w", v.Name, types.ErrOffsetOverflow)
			}
		}
	}
	return nil
}

// partition splits ds.Vars into fixed and record variables without
// reordering within either partition, per spec §4.4 step 2.
func partition(ds *types.Dataset) (fixed, record []types.Variable) {
	for _, v := range ds.Vars {
		if v.IsRecord(ds) {
			record = append(record, v)
		} else {
			fixed = append(fixed, v)
		}
	}
	return fixed, record
}

// VSize computes a variable's padded per-record data size per spec §4.3:
// the product of its dimension lengths (omitting the record axis, if any)
// times the primitive element size, rounded up to a multiple of 4. The
// product accumulates in 64 bits and is truncated to int32 for the on-disk
// field; overflow beyond 2^31-1 is a known, tolerated limitation of the
// CDF-1/2 format itself (see spec §4.3).
func VSize(ds *types.Dataset, v *types.Variable) (int32, error) {
	elemSize := v.Type.PrimitiveSize()
	if elemSize == 0 {
		return 0, fmt.Errorf("planner: variable %q: %w", v.Name, types.ErrUnsupportedType)
	}

	var count int64 = 1
	for _, id := range v.DimIDs {
		if int(id) < 0 || int(id) >= len(ds.Dims) {
			return 0, fmt.Errorf("planner: variable %q: dimid %d out of range: %w", v.Name, id, types.ErrModelInvariant)
		}
		d := ds.Dims[id]
		if d.IsRecord() {
			continue
		}
		count *= int64(d.Length)
	}

	raw := count * int64(elemSize)
	return int32(padTo4I64(raw)), nil
}

// padTo4I64 pads n up to the next multiple of 4, staying in int64 so large
// record strides don't wrap before truncation to int32 at the call site.
func padTo4I64(n int64) int64 {
	if r := n % 4; r != 0 {
		return n + (4 - r)
	}
	return n
}
