/*
Package bytestr implements a growable byte string.

A String keeps its payload in a contiguous buffer followed by one
terminator byte, which is never counted in Len or Cap but is always present
after any operation has completed. CStr exposes payload and terminator
together, for clients which need a terminated byte sequence.

Strings are byte-oriented. They do not know about character encodings;
every byte value, including the terminator value, is valid payload.

The growth policy is the same as for package vector: a full string doubles
its capacity when a single byte is inserted (starting at 4), and grows to the
exact required size when a longer run of bytes is inserted.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package bytestr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
