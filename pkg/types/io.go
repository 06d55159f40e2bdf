package types

import "io"

// Source is the random-access input byte source the reader consumes: it
// must support sequential reads and seeking to an absolute byte position.
// io.ReadSeeker already expresses exactly this contract.
type Source = io.ReadSeeker

// Sink is the sequential output byte sink the writer produces into. No seek
// capability is required: the layout planner resolves every offset before
// the first byte is written.
type Sink = io.Writer
