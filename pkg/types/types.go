// Package types defines the in-memory data model for CDF-1 (classic) and
// CDF-2 (64-bit offset) NetCDF datasets: dimensions, attributes, variables,
// and the typed values they carry. It mirrors the wire grammar in the
// Unidata File Format Specification without committing to any particular
// serialization; see internal/format, internal/reader, and internal/writer
// for the on-disk side.
package types

// NcType tags the primitive element type of an Attribute's values or a
// Variable's data, or (for the DIMENSION/VARIABLE/ATTRIBUTE values) the kind
// of a container-array header. It never appears as a value type itself.
type NcType int32

// The documented set of type tags. BYTE is unsigned 8-bit; SHORT is signed
// 16-bit; INT is signed 32-bit; FLOAT/DOUBLE are IEEE-754 32/64-bit; CHAR is
// octet-oriented text. DIMENSION/VARIABLE/ATTRIBUTE only ever tag the
// corresponding container-array prefix.
const (
	Absent    NcType = 0
	Byte      NcType = 1
	Char      NcType = 2
	Short     NcType = 3
	Int       NcType = 4
	Float     NcType = 5
	Double    NcType = 6
	Dimension NcType = 10
	Variable  NcType = 11
	Attribute NcType = 12
)

// String renders the type tag for diagnostics (dump output, error messages).
func (t NcType) String() string {
	switch t {
	case Absent:
		return "absent"
	case Byte:
		return "byte"
	case Char:
		return "char"
	case Short:
		return "short"
	case Int:
		return "int"
	case Float:
		return "float"
	case Double:
		return "double"
	case Dimension:
		return "dimension"
	case Variable:
		return "variable"
	case Attribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// IsPrimitive reports whether t may tag an Attribute or Variable's values
// (as opposed to a container-array header kind).
func (t NcType) IsPrimitive() bool {
	switch t {
	case Byte, Char, Short, Int, Float, Double:
		return true
	default:
		return false
	}
}

// PrimitiveSize returns sizeof(T) in bytes: 1 for BYTE/CHAR (both
// octet-wide), 2 for SHORT, 4 for INT/FLOAT, 8 for DOUBLE, and 0 for any
// non-primitive (container-array) tag. Note that a CHAR *value's* on-disk
// size is text-length dependent, not a fixed multiple of this — see
// internal/format.SizeValue, which only consults PrimitiveSize for non-CHAR
// types and computes CHAR sizes from the text length directly.
func (t NcType) PrimitiveSize() int {
	switch t {
	case Byte, Char:
		return 1
	case Short:
		return 2
	case Int, Float:
		return 4
	case Double:
		return 8
	default:
		return 0
	}
}

// CdfVersion selects the width of variable-data offsets on disk.
type CdfVersion uint8

const (
	// Classic is CDF-1: 32-bit variable offsets.
	Classic CdfVersion = 1
	// X64 is CDF-2, the "64-bit offset" variant: 64-bit variable offsets.
	X64 CdfVersion = 2
)

func (v CdfVersion) String() string {
	switch v {
	case Classic:
		return "classic"
	case X64:
		return "64-bit-offset"
	default:
		return "unknown"
	}
}

// Value is a tagged sum of the primitive wire types. The zero Value is
// tagged Absent and matches no declared type; use the constructor functions
// below to build a value of any kind.
type Value struct {
	typ     NcType
	byteV   uint8
	shortV  int16
	intV    int32
	floatV  float32
	doubleV float64
	text    []byte
}

// ByteValue constructs a BYTE-typed value.
func ByteValue(v uint8) Value { return Value{typ: Byte, byteV: v} }

// ShortValue constructs a SHORT-typed value.
func ShortValue(v int16) Value { return Value{typ: Short, shortV: v} }

// IntValue constructs an INT-typed value.
func IntValue(v int32) Value { return Value{typ: Int, intV: v} }

// FloatValue constructs a FLOAT-typed value.
func FloatValue(v float32) Value { return Value{typ: Float, floatV: v} }

// DoubleValue constructs a DOUBLE-typed value.
func DoubleValue(v float64) Value { return Value{typ: Double, doubleV: v} }

// TextValue constructs a CHAR-typed value carrying an octet string. A CHAR
// attribute holds exactly one of these; its value's byte length is the
// attribute's nelems.
func TextValue(s string) Value { return Value{typ: Char, text: []byte(s)} }

// RawTextValue is like TextValue but takes ownership of raw (possibly
// non-UTF-8) octets, for round-tripping text that isn't valid UTF-8.
func RawTextValue(octets []byte) Value { return Value{typ: Char, text: octets} }

// Type reports which field of the union is populated.
func (v Value) Type() NcType { return v.typ }

// Byte returns the BYTE payload; zero if Type() != Byte.
func (v Value) Byte() uint8 { return v.byteV }

// Short returns the SHORT payload; zero if Type() != Short.
func (v Value) Short() int16 { return v.shortV }

// Int returns the INT payload; zero if Type() != Int.
func (v Value) Int() int32 { return v.intV }

// Float returns the FLOAT payload; zero if Type() != Float.
func (v Value) Float() float32 { return v.floatV }

// Double returns the DOUBLE payload; zero if Type() != Double.
func (v Value) Double() float64 { return v.doubleV }

// Text returns the CHAR payload's raw octets; nil if Type() != Char.
func (v Value) Text() []byte { return v.text }

// String renders Text as a Go string (for non-CHAR values, an empty string).
func (v Value) String() string { return string(v.text) }

// Dimension names one axis of a dataset. A Length of 0 marks the record
// (unlimited) dimension; at most one dimension per Dataset may have Length 0.
type Dimension struct {
	Name   string
	Length int32
}

// IsRecord reports whether d is the record (unlimited) dimension, i.e. its
// on-disk length field is 0.
func (d Dimension) IsRecord() bool { return d.Length == 0 }

// Attribute is a named, typed sequence of values attached to the dataset
// (global attribute) or to a single Variable.
type Attribute struct {
	Name   string
	Type   NcType
	Values []Value
}

// DimHandle and VarHandle are indices into Dataset.Dims / Dataset.Vars.
// They are stable across unrelated mutations but are invalidated by removal
// of the referenced entity (there is no tombstoning: indices simply shift).
type DimHandle int

// VarHandle indexes Dataset.Vars.
type VarHandle int

// Variable is a named, typed, multi-dimensional array. DimIDs indexes into
// the owning Dataset's Dims, in declaration order; by convention the record
// dimension, if used, is DimIDs[0]. VSize and Offset are populated by the
// layout planner (internal/planner) immediately before a Write and are
// meaningless on a Dataset that has never been planned or read.
type Variable struct {
	Name   string
	DimIDs []int32
	Attrs  []Attribute
	Type   NcType
	VSize  int32
	// Offset always holds the absolute byte offset, regardless of
	// CdfVersion; internal/writer narrows it to 32 bits on emission under
	// Classic and errors if it doesn't fit (see types.ErrOffsetOverflow).
	Offset int64
	Data   []Value
}

// IsRecord reports whether v uses ds's record dimension. Per spec, that is
// equivalent to DimIDs[0] naming the record dimension when DimIDs is
// non-empty, but this checks every entry so a malformed DimIDs order is
// still detected as a record variable rather than silently treated as fixed.
func (v Variable) IsRecord(ds *Dataset) bool {
	for _, id := range v.DimIDs {
		if int(id) >= 0 && int(id) < len(ds.Dims) && ds.Dims[id].IsRecord() {
			return true
		}
	}
	return false
}

// IsScalar reports whether v has no dimensions at all.
func (v Variable) IsScalar() bool { return len(v.DimIDs) == 0 }

// Dataset is the full in-memory model of a CDF file: version, declared
// record count, dimensions, global attributes, and variables. Dataset owns
// its Dims, Attrs, and Vars; each Variable owns its own Attrs and Data.
type Dataset struct {
	Version CdfVersion
	NumRecs int32
	Dims    []Dimension
	Attrs   []Attribute
	Vars    []Variable
}

// NewDataset returns an empty dataset targeting the given on-disk version.
func NewDataset(version CdfVersion) *Dataset {
	return &Dataset{Version: version}
}

// RecordDimIndex returns the index into Dims of the record (unlimited)
// dimension, if one has been declared.
func (ds *Dataset) RecordDimIndex() (int, bool) {
	for i, d := range ds.Dims {
		if d.IsRecord() {
			return i, true
		}
	}
	return 0, false
}

// FindDim looks up a dimension by name, returning its handle.
func (ds *Dataset) FindDim(name string) (DimHandle, bool) {
	for i, d := range ds.Dims {
		if d.Name == name {
			return DimHandle(i), true
		}
	}
	return 0, false
}

// FindVar looks up a variable by name, returning its handle. This
// complements spec.md's name-indexed get_dim with the variable-side
// equivalent present in the original C++ source's netcdf_file API.
func (ds *Dataset) FindVar(name string) (VarHandle, bool) {
	for i, v := range ds.Vars {
		if v.Name == name {
			return VarHandle(i), true
		}
	}
	return 0, false
}

// Dim dereferences a DimHandle. Panics if h is out of range, same as a bare
// slice index would — handles are only ever produced by this package.
func (ds *Dataset) Dim(h DimHandle) *Dimension { return &ds.Dims[h] }

// Var dereferences a VarHandle.
func (ds *Dataset) Var(h VarHandle) *Variable { return &ds.Vars[h] }
