// Package writer implements the CDF emission pass (spec component C6): a
// planned Dataset becomes bytes on a sink, in exactly the order
// internal/reader expects to read them back.
package writer

import (
	"fmt"

	"github.com/cdfkit/cdfkit/internal/buf"
	"github.com/cdfkit/cdfkit/internal/format"
	"github.com/cdfkit/cdfkit/internal/planner"
	"github.com/cdfkit/cdfkit/pkg/types"
)

// Write plans ds (assigning vsize, begin, and fixed-before-record order) and
// serializes it to dst. ds is mutated by planning; callers that need the
// pre-write variable order should copy it first.
func Write(dst types.Sink, ds *types.Dataset) error {
	if err := planner.Plan(ds); err != nil {
		return err
	}

	w := &sink{w: dst}
	w.writeMagic(ds.Version)
	w.writeInt32(ds.NumRecs)
	w.writeDims(ds.Dims)
	w.writeAttrs(ds.Attrs)
	w.writeVarHeaders(ds.Vars, ds.Version)
	if w.err != nil {
		return w.err
	}

	if err := writeAllVarData(dst, ds); err != nil {
		return err
	}
	return nil
}

// sink wraps a types.Sink with big-endian primitive writers that latch the
// first error, so the call sequence in Write reads linearly instead of
// threading an error return through every field.
type sink struct {
	w   types.Sink
	err error
}

func (s *sink) write(b []byte) {
	if s.err != nil {
		return
	}
	_, s.err = s.w.Write(b)
}

func (s *sink) writeInt32(v int32) {
	var b [4]byte
	buf.PutI32BE(b[:], v)
	s.write(b[:])
}

func (s *sink) writeInt64(v int64) {
	var b [8]byte
	buf.PutI64BE(b[:], v)
	s.write(b[:])
}

func (s *sink) writeMagic(version types.CdfVersion) {
	var b [4]byte
	copy(b[:3], format.MagicPrefix[:])
	b[3] = byte(version)
	s.write(b[:])
}

// writeText writes a length-prefixed, zero-padded octet string.
func (s *sink) writeText(octets []byte) {
	s.writeInt32(int32(len(octets)))
	s.write(octets)
	s.writePad(len(octets))
}

func (s *sink) writePad(n int) {
	if pad := buf.PadTo4(n) - n; pad > 0 {
		s.write(make([]byte, pad))
	}
}

func (s *sink) writeTaggedPrefix(tag types.NcType, n int) {
	s.writeInt32(int32(tag))
	s.writeInt32(int32(n))
}

func (s *sink) writeDims(dims []types.Dimension) {
	if len(dims) == 0 {
		s.writeTaggedPrefix(types.Absent, 0)
		return
	}
	s.writeTaggedPrefix(types.Dimension, len(dims))
	for _, d := range dims {
		s.writeText([]byte(d.Name))
		s.writeInt32(d.Length)
	}
}

func (s *sink) writeAttrs(attrs []types.Attribute) {
	if len(attrs) == 0 {
		s.writeTaggedPrefix(types.Absent, 0)
		return
	}
	s.writeTaggedPrefix(types.Attribute, len(attrs))
	for _, a := range attrs {
		s.writeOneAttr(a)
	}
}

func (s *sink) writeOneAttr(a types.Attribute) {
	s.writeText([]byte(a.Name))
	s.writeInt32(int32(a.Type))

	if a.Type == types.Char {
		text, err := attrText(a)
		if err != nil {
			if s.err == nil {
				s.err = fmt.Errorf("writer: attribute %q: %w", a.Name, err)
			}
			return
		}
		s.writeInt32(int32(len(text)))
		s.write(text)
		s.writePad(len(text))
		return
	}

	s.writeInt32(int32(len(a.Values)))
	raw := 0
	for _, v := range a.Values {
		s.writePrimitive(a.Type, v)
		raw += a.Type.PrimitiveSize()
	}
	s.writePad(raw)
}

// attrText returns a CHAR attribute's single value's octets; an attribute
// with no values encodes as an empty string. It errors if the one value
// present isn't itself CHAR-typed.
func attrText(a types.Attribute) ([]byte, error) {
	if len(a.Values) == 0 {
		return nil, nil
	}
	if a.Values[0].Type() != types.Char {
		return nil, types.ErrValueTypeMismatch
	}
	return a.Values[0].Text(), nil
}

func (s *sink) writePrimitive(t types.NcType, v types.Value) {
	if v.Type() != t {
		if s.err == nil {
			s.err = fmt.Errorf("writer: declared type %v, value tagged %v: %w", t, v.Type(), types.ErrValueTypeMismatch)
		}
		return
	}
	switch t {
	case types.Byte:
		s.write([]byte{v.Byte()})
	case types.Short:
		var b [2]byte
		buf.PutI16BE(b[:], v.Short())
		s.write(b[:])
	case types.Int:
		s.writeInt32(v.Int())
	case types.Float:
		var b [4]byte
		buf.PutF32BE(b[:], v.Float())
		s.write(b[:])
	case types.Double:
		var b [8]byte
		buf.PutF64BE(b[:], v.Double())
		s.write(b[:])
	default:
		if s.err == nil {
			s.err = fmt.Errorf("writer: %w", types.ErrUnsupportedType)
		}
	}
}

func (s *sink) writeVarHeaders(vars []types.Variable, version types.CdfVersion) {
	if len(vars) == 0 {
		s.writeTaggedPrefix(types.Absent, 0)
		return
	}
	s.writeTaggedPrefix(types.Variable, len(vars))
	for _, v := range vars {
		s.writeText([]byte(v.Name))
		s.writeInt32(int32(len(v.DimIDs)))
		for _, id := range v.DimIDs {
			s.writeInt32(id)
		}
		s.writeAttrs(v.Attrs)
		s.writeInt32(int32(v.Type))
		s.writeInt32(v.VSize)
		if version == types.X64 {
			s.writeInt64(v.Offset)
		} else {
			// Plan already rejected any Classic offset beyond
			// format.ClassicOffsetMax before Write reached this point.
			s.writeInt32(int32(v.Offset))
		}
	}
}
