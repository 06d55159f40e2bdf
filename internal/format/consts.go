// Package format holds pure, allocation-light functions for the wire shape
// of a CDF file: magic bytes, the tagged-array prefix size, and the
// byte-count formulas behind every entity in the format (the "size
// calculator", spec component C3). It is independent of internal/reader and
// internal/writer so both can share one source of truth for sizes.
package format

import "github.com/cdfkit/cdfkit/pkg/types"

// MagicPrefix is the 3-byte signature at the start of every CDF file.
var MagicPrefix = [3]byte{'C', 'D', 'F'}

const (
	// MagicSize is the total size of the magic: the 3-byte prefix plus the
	// 1-byte version.
	MagicSize = 4

	// TaggedArrayHeaderSize is the size of a typed-array prefix: a 4-byte
	// type tag (NcType, or ABSENT) followed by a 4-byte element count.
	TaggedArrayHeaderSize = 8

	// NelemsSize is the width of every length-prefix field (name lengths,
	// attribute/dim/var counts): CDF has no variable-width integers.
	NelemsSize = 4
)

// ClassicOffsetMax is 2^31-1, the largest begin offset CLASSIC (CDF-1) can
// represent; the planner errors with types.ErrOffsetOverflow beyond this.
const ClassicOffsetMax = int64(1)<<31 - 1

// BeginSize returns the width in bytes of a variable's begin offset field
// for the given on-disk version: 4 bytes under CLASSIC, 8 under X64.
func BeginSize(version types.CdfVersion) int {
	if version == types.X64 {
		return 8
	}
	return 4
}
