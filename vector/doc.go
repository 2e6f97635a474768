/*
Package vector implements a growable, contiguous buffer of elements.

A Vector owns one allocation at a time. Elements in [0, Len()) are live,
slots in [Len(), Cap()) are spare storage and always hold the zero value of
the element type. Storage grows only in Reserve, which every growing
operation funnels through; it never shrinks.

Growth policy: when an append or insert finds the vector full, capacity is
doubled, with a floor of 4 for the first growth of an empty vector.

Positions (type Pos) are handles pairing a vector with an offset. Any call
that reallocates invalidates all positions issued before, and Erase
invalidates positions at or after the erased offset. This is not detected at
runtime.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
