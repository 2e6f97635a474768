/*
Package dump renders the internal layout of containers for debugging.

Console renderers show live slots, spare slots and, for byte strings, the
terminator, optionally colored. ListDot writes the ring of a linked list in
Graphviz DOT format, and HTML writes the slots of a vector as an HTML table.

	v := vector.FromSlice(1, 2, 3)
	dump.Vector(os.Stdout, v, dump.ConfigFromTerminal())

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}
