package reader

import (
	"fmt"
	"io"

	"github.com/cdfkit/cdfkit/pkg/types"
)

// readAllVarData seeks to each variable's declared begin and reads its
// payload, per spec §4.5 step 6. Fixed variables hold one array's worth of
// data; record variables are interleaved at a stride equal to the sum of
// every record variable's vsize, so each record's data for v sits at
// v.Offset + r*stride rather than v.Offset + r*v.VSize.
func readAllVarData(src io.ReadSeeker, ds *types.Dataset) error {
	stride := recordStride(ds)
	for i := range ds.Vars {
		v := &ds.Vars[i]
		raw := rawElemCount(ds, v)

		if !v.IsRecord(ds) {
			if _, err := src.Seek(v.Offset, io.SeekStart); err != nil {
				return fmt.Errorf("reader: seek var %q: %w", v.Name, err)
			}
			data, err := readVarChunk(src, v.Type, raw, int(v.VSize))
			if err != nil {
				return fmt.Errorf("reader: var %q data: %w", v.Name, err)
			}
			v.Data = data
			continue
		}

		var data []types.Value
		for r := int32(0); r < ds.NumRecs; r++ {
			off := v.Offset + int64(r)*stride
			if _, err := src.Seek(off, io.SeekStart); err != nil {
				return fmt.Errorf("reader: seek var %q record %d: %w", v.Name, r, err)
			}
			chunk, err := readVarChunk(src, v.Type, raw, int(v.VSize))
			if err != nil {
				return fmt.Errorf("reader: var %q record %d data: %w", v.Name, r, err)
			}
			data = append(data, chunk...)
		}
		v.Data = data
	}
	return nil
}

// recordStride sums the padded per-record size of every record variable:
// the distance from one record to the next in the interleaved record region.
func recordStride(ds *types.Dataset) int64 {
	var stride int64
	for _, v := range ds.Vars {
		if v.IsRecord(ds) {
			stride += int64(v.VSize)
		}
	}
	return stride
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

// readVarChunk reads one array instance's worth of data (rawCount elements)
// followed by whatever padding remains to reach vsize bytes. CHAR data is
// represented as a single RawTextValue holding the raw (unpadded) octets,
// mirroring how a CHAR attribute's nelems octets form exactly one Value.
func readVarChunk(src io.Reader, t types.NcType, rawCount, vsize int) ([]types.Value, error) {
	if t == types.Char {
		text, err := readExact(src, rawCount)
		if err != nil {
			return nil, err
		}
		if pad := vsize - rawCount; pad > 0 {
			if _, err := readExact(src, pad); err != nil {
				return nil, err
			}
		}
		return []types.Value{types.RawTextValue(text)}, nil
	}

	size := t.PrimitiveSize()
	if size == 0 {
		return nil, fmt.Errorf("%w", types.ErrUnsupportedType)
	}
	values := make([]types.Value, rawCount)
	for i := range values {
		b, err := readExact(src, size)
		if err != nil {
			return nil, err
		}
		values[i] = decodePrimitive(t, b)
	}
	if pad := vsize - rawCount*size; pad > 0 {
		if _, err := readExact(src, pad); err != nil {
			return nil, err
		}
	}
	return values, nil
}
