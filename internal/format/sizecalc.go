package format

import (
	"github.com/cdfkit/cdfkit/internal/buf"
	"github.com/cdfkit/cdfkit/pkg/types"
)

// SizeNamed returns the padded, length-prefixed on-disk size of a name:
// pad_to_4(4 + len(name)).
func SizeNamed(name string) int {
	return buf.PadTo4(NelemsSize + len(name))
}

// SizeDim returns the on-disk size of a single dim entry: its name plus a
// 4-byte length field.
func SizeDim(d types.Dimension) int {
	return SizeNamed(d.Name) + 4
}

// SizeDimArray returns the on-disk size of the dim_array section, including
// its 8-byte typed-array prefix.
func SizeDimArray(dims []types.Dimension) int {
	total := TaggedArrayHeaderSize
	for _, d := range dims {
		total += SizeDim(d)
	}
	return total
}

// SizeValue returns the on-disk size of a single value of the given
// attribute/variable type: sizeof(T) for primitives, pad_to_4(len(text)) for
// CHAR.
func SizeValue(v types.Value, t types.NcType) int {
	if t == types.Char {
		return buf.PadTo4(len(v.Text()))
	}
	return t.PrimitiveSize()
}

// SizeAttr returns the on-disk size of one attribute: its name, 4-byte type
// tag, 4-byte nelems, and the padded total of its values.
func SizeAttr(a types.Attribute) int {
	valuesSize := 0
	for _, v := range a.Values {
		valuesSize += SizeValue(v, a.Type)
	}
	return SizeNamed(a.Name) + 4 + NelemsSize + buf.PadTo4(valuesSize)
}

// SizeAttrArray returns the on-disk size of an attr_array section (used for
// both global attributes and a variable's own attributes), including its
// 8-byte typed-array prefix.
func SizeAttrArray(attrs []types.Attribute) int {
	total := TaggedArrayHeaderSize
	for _, a := range attrs {
		total += SizeAttr(a)
	}
	return total
}

// SizeVarHeader returns the on-disk size of one variable's header entry
// (name, dimid list, attr array, type, vsize, and begin — not its data
// payload). beginSize is 4 under CLASSIC or 8 under X64.
func SizeVarHeader(v types.Variable, beginSize int) int {
	return SizeNamed(v.Name) +
		NelemsSize + 4*len(v.DimIDs) +
		SizeAttrArray(v.Attrs) +
		4 + // type
		4 + // vsize
		beginSize
}

// SizeVarArrayHeader returns the on-disk size of the var_array section's
// headers (not variable data), including its 8-byte typed-array prefix.
func SizeVarArrayHeader(vars []types.Variable, version types.CdfVersion) int {
	beginSize := BeginSize(version)
	total := TaggedArrayHeaderSize
	for _, v := range vars {
		total += SizeVarHeader(v, beginSize)
	}
	return total
}

// HeaderSize returns the total on-disk header size: magic, numrecs, the dim
// array, the global attr array, and the var array's headers. This is the
// absolute byte offset at which the first fixed variable's data begins.
func HeaderSize(ds *types.Dataset) int {
	return MagicSize + 4 +
		SizeDimArray(ds.Dims) +
		SizeAttrArray(ds.Attrs) +
		SizeVarArrayHeader(ds.Vars, ds.Version)
}
