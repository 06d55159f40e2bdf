package writer

import (
	"fmt"

	"github.com/cdfkit/cdfkit/pkg/types"
)

// writeAllVarData emits every variable's payload in on-disk order: each
// fixed variable's single array, then the record region with one variable
// per column, interleaved record-by-record to match the stride
// internal/reader assumes (v.Offset + r*stride).
func writeAllVarData(dst types.Sink, ds *types.Dataset) error {
	s := &sink{w: dst}

	var recordVars []*types.Variable
	for i := range ds.Vars {
		v := &ds.Vars[i]
		if v.IsRecord(ds) {
			recordVars = append(recordVars, v)
			continue
		}
		raw := rawElemCount(ds, v)
		s.writeChunk(v.Type, v.Data, 0, raw, int(v.VSize))
	}

	for r := int32(0); r < ds.NumRecs; r++ {
		for _, v := range recordVars {
			raw := rawElemCount(ds, v)
			s.writeChunk(v.Type, v.Data, int(r)*chunkCount(v.Type, raw), raw, int(v.VSize))
		}
	}

	return s.err
}

// rawElemCount is the unpadded element count of one array instance of v:
// the product of its dimension lengths, omitting the record axis.
func rawElemCount(ds *types.Dataset, v *types.Variable) int {
	count := 1
	for _, id := range v.DimIDs {
		if int(id) < 0 || int(id) >= len(ds.Dims) {
			continue
		}
		d := ds.Dims[id]
		if d.IsRecord() {
			continue
		}
		count *= int(d.Length)
	}
	return count
}

// chunkCount is the number of Value entries one record/array instance
// occupies in a Variable's Data slice: 1 for CHAR (one text blob per
// instance), raw for every primitive type (one Value per element).
func chunkCount(t types.NcType, raw int) int {
	if t == types.Char {
		return 1
	}
	return raw
}

// writeChunk writes one array instance's worth of data starting at index
// start within values, followed by whatever padding remains to reach vsize
// bytes.
func (s *sink) writeChunk(t types.NcType, values []types.Value, start, rawCount, vsize int) {
	if t == types.Char {
		text, err := charAt(values, start)
		if err != nil {
			if s.err == nil {
				s.err = err
			}
			return
		}
		s.write(text)
		if pad := vsize - len(text); pad > 0 {
			s.write(make([]byte, pad))
		}
		return
	}

	size := t.PrimitiveSize()
	written := 0
	for i := 0; i < rawCount; i++ {
		idx := start + i
		if idx >= len(values) {
			if s.err == nil {
				s.err = fmt.Errorf("writer: missing value at index %d (declared type %v): %w", idx, t, types.ErrValueTypeMismatch)
			}
			return
		}
		s.writePrimitive(t, values[idx])
		written += size
	}
	if pad := vsize - written; pad > 0 {
		s.write(make([]byte, pad))
	}
}

// charAt returns the CHAR value's octets at idx, erroring if the slot is
// missing or isn't itself CHAR-typed — the same "declared type must match
// the populated slot" invariant writePrimitive enforces for other types.
func charAt(values []types.Value, idx int) ([]byte, error) {
	if idx >= len(values) {
		return nil, fmt.Errorf("writer: missing value at index %d (declared type char): %w", idx, types.ErrValueTypeMismatch)
	}
	v := values[idx]
	if v.Type() != types.Char {
		return nil, fmt.Errorf("writer: declared type char, value tagged %v: %w", v.Type(), types.ErrValueTypeMismatch)
	}
	return v.Text(), nil
}
