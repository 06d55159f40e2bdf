// Package buf contains endian-safe read/write helpers for the CDF wire
// format and the 4-byte padding discipline it uses throughout.
package buf

import (
	"encoding/binary"
	"math"
)

// U8 reads an unsigned 8-bit value. Returns 0 when b is empty.
func U8(b []byte) uint8 {
	if len(b) < 1 {
		return 0
	}
	return b[0]
}

// U16BE reads a big-endian uint16. Returns 0 when b is too short.
func U16BE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// I16BE reads a big-endian, signed, two's-complement int16.
func I16BE(b []byte) int16 {
	return int16(U16BE(b))
}

// U32BE reads a big-endian uint32. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// I32BE reads a big-endian, signed, two's-complement int32.
func I32BE(b []byte) int32 {
	return int32(U32BE(b))
}

// U64BE reads a big-endian uint64. Returns 0 when b is too short.
func U64BE(b []byte) uint64 {
	if len(b) < 8 {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// I64BE reads a big-endian, signed, two's-complement int64.
func I64BE(b []byte) int64 {
	return int64(U64BE(b))
}

// F32BE reads a big-endian IEEE-754 single-precision float.
func F32BE(b []byte) float32 {
	return math.Float32frombits(U32BE(b))
}

// F64BE reads a big-endian IEEE-754 double-precision float.
func F64BE(b []byte) float64 {
	return math.Float64frombits(U64BE(b))
}

// PutU8 writes a single byte. Panics if b is empty, same as the slice would.
func PutU8(b []byte, v uint8) { b[0] = v }

// PutU16BE writes v as a big-endian uint16.
func PutU16BE(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }

// PutI16BE writes v as a big-endian int16.
func PutI16BE(b []byte, v int16) { PutU16BE(b, uint16(v)) }

// PutU32BE writes v as a big-endian uint32.
func PutU32BE(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }

// PutI32BE writes v as a big-endian int32.
func PutI32BE(b []byte, v int32) { PutU32BE(b, uint32(v)) }

// PutU64BE writes v as a big-endian uint64.
func PutU64BE(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

// PutI64BE writes v as a big-endian int64.
func PutI64BE(b []byte, v int64) { PutU64BE(b, uint64(v)) }

// PutF32BE writes v as a big-endian IEEE-754 single-precision float.
func PutF32BE(b []byte, v float32) { PutU32BE(b, math.Float32bits(v)) }

// PutF64BE writes v as a big-endian IEEE-754 double-precision float.
func PutF64BE(b []byte, v float64) { PutU64BE(b, math.Float64bits(v)) }

// NeedsPad reports whether n is not a multiple of 4.
func NeedsPad(n int) bool { return n%4 != 0 }

// PadTo4 rounds n up to the next multiple of 4.
func PadTo4(n int) int {
	if r := n % 4; r != 0 {
		return n + (4 - r)
	}
	return n
}
