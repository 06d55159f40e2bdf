// Package reader implements the CDF parse pass (spec component C5): bytes
// from a random-access source become a types.Dataset, with magic, tags, and
// offset monotonicity validated as they're encountered.
package reader

import (
	"errors"
	"fmt"
	"io"

	"github.com/cdfkit/cdfkit/internal/buf"
	"github.com/cdfkit/cdfkit/internal/format"
	"github.com/cdfkit/cdfkit/pkg/types"
)

// Read parses the CDF file that starts at byte 0 of src (it seeks there
// first, whatever src's current position) and returns the decoded Dataset. Parse order follows spec §4.5: magic,
// numrecs, dims, global attrs, var headers, then (after seeking to each
// variable's declared begin) var data.
func Read(src types.Source) (*types.Dataset, error) {
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("reader: seek to start: %w", err)
	}

	version, err := readMagic(src)
	if err != nil {
		return nil, err
	}
	ds := types.NewDataset(version)

	numrecs, err := readInt32(src)
	if err != nil {
		return nil, err
	}
	if numrecs < 0 {
		// Covers both ordinary negative counts and the 0xFFFFFFFF
		// "streaming" sentinel (see DESIGN.md open-question decisions):
		// this reader has no way to recover a true count from record
		// bytes without a reliable source size, so it's rejected outright.
		return nil, fmt.Errorf("reader: numrecs %d: %w", numrecs, types.ErrInvalidFormat)
	}
	ds.NumRecs = numrecs

	if ds.Dims, err = readDims(src); err != nil {
		return nil, err
	}
	if err := checkSingleRecordDim(ds.Dims); err != nil {
		return nil, err
	}

	if ds.Attrs, err = readAttrs(src); err != nil {
		return nil, err
	}

	if ds.Vars, err = readVarHeaders(src, version, len(ds.Dims)); err != nil {
		return nil, err
	}
	if err := validateFixedOffsetsIncreasing(ds); err != nil {
		return nil, err
	}

	if err := readAllVarData(src, ds); err != nil {
		return nil, err
	}
	return ds, nil
}

func readMagic(src io.Reader) (types.CdfVersion, error) {
	b, err := readExact(src, format.MagicSize)
	if err != nil {
		return 0, err
	}
	if b[0] != format.MagicPrefix[0] || b[1] != format.MagicPrefix[1] || b[2] != format.MagicPrefix[2] {
		return 0, fmt.Errorf("reader: bad magic %q: %w", b[:3], types.ErrInvalidFormat)
	}
	switch types.CdfVersion(b[3]) {
	case types.Classic, types.X64:
		return types.CdfVersion(b[3]), nil
	default:
		return 0, fmt.Errorf("reader: version byte %d: %w", b[3], types.ErrUnsupportedVersion)
	}
}

func readExact(src io.Reader, n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(src, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("reader: %w", types.ErrUnexpectedEOF)
		}
		return nil, fmt.Errorf("reader: read: %w", err)
	}
	return b, nil
}

func readInt32(src io.Reader) (int32, error) {
	b, err := readExact(src, 4)
	if err != nil {
		return 0, err
	}
	return buf.I32BE(b), nil
}

func readInt64(src io.Reader) (int64, error) {
	b, err := readExact(src, 8)
	if err != nil {
		return 0, err
	}
	return buf.I64BE(b), nil
}

// readText reads a length-prefixed, zero-padded octet string: the wire
// "name" production, and also the textual payload of a CHAR attribute.
func readText(src io.Reader) ([]byte, error) {
	n, err := readInt32(src)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("reader: negative length %d: %w", n, types.ErrInvalidFormat)
	}
	text, err := readExact(src, int(n))
	if err != nil {
		return nil, err
	}
	if pad := buf.PadTo4(int(n)) - int(n); pad > 0 {
		if _, err := readExact(src, pad); err != nil {
			return nil, err
		}
	}
	return text, nil
}

// readTaggedPrefix reads an 8-byte typed-array prefix (tag, nelems).
func readTaggedPrefix(src io.Reader) (types.NcType, int32, error) {
	tag, err := readInt32(src)
	if err != nil {
		return 0, 0, err
	}
	n, err := readInt32(src)
	if err != nil {
		return 0, 0, err
	}
	if n < 0 {
		return 0, 0, fmt.Errorf("reader: negative count %d: %w", n, types.ErrInvalidFormat)
	}
	return types.NcType(tag), n, nil
}

func readDims(src io.Reader) ([]types.Dimension, error) {
	tag, n, err := readTaggedPrefix(src)
	if err != nil {
		return nil, err
	}
	if tag == types.Absent {
		if n != 0 {
			return nil, fmt.Errorf("reader: absent dim_array with nelems %d: %w", n, types.ErrInvalidFormat)
		}
		return nil, nil
	}
	if tag != types.Dimension {
		return nil, fmt.Errorf("reader: dim_array tag %v: %w", tag, types.ErrInvalidFormat)
	}
	dims := make([]types.Dimension, n)
	for i := range dims {
		name, err := readText(src)
		if err != nil {
			return nil, err
		}
		length, err := readInt32(src)
		if err != nil {
			return nil, err
		}
		if length < 0 {
			return nil, fmt.Errorf("reader: dim %q length %d: %w", name, length, types.ErrInvalidFormat)
		}
		dims[i] = types.Dimension{Name: string(name), Length: length}
	}
	return dims, nil
}

func checkSingleRecordDim(dims []types.Dimension) error {
	seen := false
	for _, d := range dims {
		if d.IsRecord() {
			if seen {
				return fmt.Errorf("reader: more than one record dimension: %w", types.ErrModelInvariant)
			}
			seen = true
		}
	}
	return nil
}

// readAttrs reads an attr_array: a typed-array prefix followed by that many
// attrs. Used for both global attributes and each variable's own attrs.
func readAttrs(src io.Reader) ([]types.Attribute, error) {
	tag, n, err := readTaggedPrefix(src)
	if err != nil {
		return nil, err
	}
	if tag == types.Absent {
		if n != 0 {
			return nil, fmt.Errorf("reader: absent attr_array with nelems %d: %w", n, types.ErrInvalidFormat)
		}
		return nil, nil
	}
	if tag != types.Attribute {
		return nil, fmt.Errorf("reader: attr_array tag %v: %w", tag, types.ErrInvalidFormat)
	}
	attrs := make([]types.Attribute, n)
	for i := range attrs {
		a, err := readOneAttr(src)
		if err != nil {
			return nil, err
		}
		attrs[i] = a
	}
	return attrs, nil
}

func readOneAttr(src io.Reader) (types.Attribute, error) {
	name, err := readText(src)
	if err != nil {
		return types.Attribute{}, err
	}
	typeTag, err := readInt32(src)
	if err != nil {
		return types.Attribute{}, err
	}
	t := types.NcType(typeTag)
	nelems, err := readInt32(src)
	if err != nil {
		return types.Attribute{}, err
	}
	if nelems < 0 {
		return types.Attribute{}, fmt.Errorf("reader: attr %q nelems %d: %w", name, nelems, types.ErrInvalidFormat)
	}

	if t == types.Char {
		text, err := readExact(src, int(nelems))
		if err != nil {
			return types.Attribute{}, err
		}
		if pad := buf.PadTo4(int(nelems)) - int(nelems); pad > 0 {
			if _, err := readExact(src, pad); err != nil {
				return types.Attribute{}, err
			}
		}
		return types.Attribute{Name: string(name), Type: t, Values: []types.Value{types.RawTextValue(text)}}, nil
	}

	size := t.PrimitiveSize()
	if size == 0 || !t.IsPrimitive() {
		return types.Attribute{}, fmt.Errorf("reader: attr %q type %v: %w", name, t, types.ErrUnsupportedType)
	}
	values := make([]types.Value, nelems)
	raw := int(nelems) * size
	for i := range values {
		b, err := readExact(src, size)
		if err != nil {
			return types.Attribute{}, err
		}
		values[i] = decodePrimitive(t, b)
	}
	if pad := buf.PadTo4(raw) - raw; pad > 0 {
		if _, err := readExact(src, pad); err != nil {
			return types.Attribute{}, err
		}
	}
	return types.Attribute{Name: string(name), Type: t, Values: values}, nil
}

func decodePrimitive(t types.NcType, b []byte) types.Value {
	switch t {
	case types.Byte:
		return types.ByteValue(buf.U8(b))
	case types.Short:
		return types.ShortValue(buf.I16BE(b))
	case types.Int:
		return types.IntValue(buf.I32BE(b))
	case types.Float:
		return types.FloatValue(buf.F32BE(b))
	case types.Double:
		return types.DoubleValue(buf.F64BE(b))
	default:
		return types.Value{}
	}
}

func readVarHeaders(src io.Reader, version types.CdfVersion, numDims int) ([]types.Variable, error) {
	tag, n, err := readTaggedPrefix(src)
	if err != nil {
		return nil, err
	}
	if tag == types.Absent {
		if n != 0 {
			return nil, fmt.Errorf("reader: absent var_array with nelems %d: %w", n, types.ErrInvalidFormat)
		}
		return nil, nil
	}
	if tag != types.Variable {
		return nil, fmt.Errorf("reader: var_array tag %v: %w", tag, types.ErrInvalidFormat)
	}
	vars := make([]types.Variable, n)
	for i := range vars {
		v, err := readOneVarHeader(src, version, numDims)
		if err != nil {
			return nil, err
		}
		vars[i] = v
	}
	return vars, nil
}

func readOneVarHeader(src io.Reader, version types.CdfVersion, numDims int) (types.Variable, error) {
	name, err := readText(src)
	if err != nil {
		return types.Variable{}, err
	}
	ndims, err := readInt32(src)
	if err != nil {
		return types.Variable{}, err
	}
	if ndims < 0 {
		return types.Variable{}, fmt.Errorf("reader: var %q ndims %d: %w", name, ndims, types.ErrInvalidFormat)
	}
	dimids := make([]int32, ndims)
	for i := range dimids {
		id, err := readInt32(src)
		if err != nil {
			return types.Variable{}, err
		}
		if int(id) < 0 || int(id) >= numDims {
			return types.Variable{}, fmt.Errorf("reader: var %q dimid %d out of range: %w", name, id, types.ErrModelInvariant)
		}
		dimids[i] = id
	}

	attrs, err := readAttrs(src)
	if err != nil {
		return types.Variable{}, err
	}

	typeTag, err := readInt32(src)
	if err != nil {
		return types.Variable{}, err
	}
	t := types.NcType(typeTag)
	if !t.IsPrimitive() {
		return types.Variable{}, fmt.Errorf("reader: var %q type %v: %w", name, t, types.ErrUnsupportedType)
	}

	vsize, err := readInt32(src)
	if err != nil {
		return types.Variable{}, err
	}

	var begin int64
	if version == types.X64 {
		begin, err = readInt64(src)
	} else {
		var b32 int32
		b32, err = readInt32(src)
		begin = int64(b32)
	}
	if err != nil {
		return types.Variable{}, err
	}

	return types.Variable{
		Name:   string(name),
		DimIDs: dimids,
		Attrs:  attrs,
		Type:   t,
		VSize:  vsize,
		Offset: begin,
	}, nil
}

func validateFixedOffsetsIncreasing(ds *types.Dataset) error {
	header := int64(format.HeaderSize(ds))
	var prev int64 = -1
	for _, v := range ds.Vars {
		if v.IsRecord(ds) {
			continue
		}
		if prev == -1 && v.Offset < header {
			return fmt.Errorf("reader: var %q begin %d before header end %d: %w", v.Name, v.Offset, header, types.ErrInvalidFormat)
		}
		if prev != -1 && v.Offset <= prev {
			return fmt.Errorf("reader: var %q begin %d not increasing: %w", v.Name, v.Offset, types.ErrInvalidFormat)
		}
		prev = v.Offset
	}
	return nil
}
