package types

// ErrKind classifies a codec error so callers can branch on intent rather
// than on message text. These correspond one-to-one to the error kinds
// named in the specification's error handling design.
type ErrKind int

const (
	// ErrKindFormat indicates a malformed wire structure: bad magic bytes, a
	// typed-array tag that disagrees with its container, or non-monotonic
	// variable offsets.
	ErrKindFormat ErrKind = iota
	// ErrKindUnsupportedVersion indicates the version byte wasn't 1 or 2.
	ErrKindUnsupportedVersion
	// ErrKindUnsupportedType indicates a type tag outside the documented set
	// where a primitive or CHAR was required.
	ErrKindUnsupportedType
	// ErrKindUnexpectedEOF indicates the byte source was exhausted mid-record.
	ErrKindUnexpectedEOF
	// ErrKindValueTypeMismatch indicates an attribute or variable value
	// doesn't match its declared type during serialization.
	ErrKindValueTypeMismatch
	// ErrKindOffsetOverflow indicates the planner produced an offset that
	// doesn't fit the selected CdfVersion's offset width.
	ErrKindOffsetOverflow
	// ErrKindInvariant indicates a Dataset invariant violation: more than
	// one record dimension, a dangling dimid, an empty name, and so on.
	ErrKindInvariant
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindFormat:
		return "invalid format"
	case ErrKindUnsupportedVersion:
		return "unsupported version"
	case ErrKindUnsupportedType:
		return "unsupported type"
	case ErrKindUnexpectedEOF:
		return "unexpected eof"
	case ErrKindValueTypeMismatch:
		return "value type mismatch"
	case ErrKindOffsetOverflow:
		return "offset overflow"
	case ErrKindInvariant:
		return "model invariant violation"
	default:
		return "unknown error"
	}
}

// Error is a typed codec error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

// Unwrap exposes the underlying cause, if any, to errors.Is/As.
func (e *Error) Unwrap() error { return e.Err }

// NewError builds an *Error of the given kind wrapping cause (which may be nil).
func NewError(kind ErrKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Sentinels for errors.Is comparisons against a bare kind, independent of message.
var (
	// ErrInvalidFormat is returned for magic/tag/offset-ordering violations.
	ErrInvalidFormat = &Error{Kind: ErrKindFormat, Msg: "invalid cdf format"}
	// ErrUnsupportedVersion is returned when the magic version byte isn't 1 or 2.
	ErrUnsupportedVersion = &Error{Kind: ErrKindUnsupportedVersion, Msg: "unsupported cdf version"}
	// ErrUnsupportedType is returned for unrecognized or out-of-context type tags.
	ErrUnsupportedType = &Error{Kind: ErrKindUnsupportedType, Msg: "unsupported nc_type"}
	// ErrUnexpectedEOF is returned when the source runs out of bytes mid-record.
	ErrUnexpectedEOF = &Error{Kind: ErrKindUnexpectedEOF, Msg: "unexpected end of input"}
	// ErrValueTypeMismatch is returned when a Value's tag doesn't match its
	// attribute/variable declared type during serialization.
	ErrValueTypeMismatch = &Error{Kind: ErrKindValueTypeMismatch, Msg: "value does not match declared type"}
	// ErrOffsetOverflow is returned when a planned offset exceeds 2^31-1 under Classic.
	ErrOffsetOverflow = &Error{Kind: ErrKindOffsetOverflow, Msg: "variable offset exceeds classic 32-bit range"}
	// ErrModelInvariant is returned for structural Dataset invariant violations.
	ErrModelInvariant = &Error{Kind: ErrKindInvariant, Msg: "dataset invariant violated"}
)
