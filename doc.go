/*
Package containers is the root of a small family of generic sequence and
adapter containers, modelled after the containers of a standard template
library.

# Containers

The core of the module are two containers managing their own contiguous
storage:

  - package vector: a growable buffer of elements of any type,
  - package bytestr: a growable byte string which always keeps a trailing
    terminator byte behind its payload.

Both grow by the same policy: when an append would overflow, capacity is
doubled, starting at 4 for an empty container. Storage never shrinks.

Around the core there are

  - package list: a doubly linked ring with a permanent sentinel node,
  - package deque: a double-ended ring buffer,
  - packages stack, queue and pqueue: adapters restricting an injectable
    store to LIFO, FIFO and priority order,
  - package dump: renderers for inspecting container layouts while debugging.

# Positions

Positions handed out by containers (vector.Pos, list.Elem) pair a reference
to the container with an offset or node index. A vector position becomes
invalid as soon as the vector reallocates, and whenever an element at or
before it is erased. List elements stay valid until they are erased. Apart
from ownership, none of this is checked at runtime; it is a contract between
container and client.

# Contract Violations

Misuse of a container (an index out of range, popping from an empty
container, handing a position to a container it does not belong to) is a
programmer error. Operations panic in this case, with an error value for
which IsContractViolation reports true. No container operation returns an
error for misuse. Errors are returned only where the environment may fail,
i.e. for stream I/O of byte strings.

Containers are not safe for concurrent use.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package containers

import (
	"github.com/npillmayer/containers/internal/contract"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ContainerError is an error type for the containers module.
type ContainerError = contract.Error

// ErrContractViolation marks the panic value of every container operation
// which has been called in violation of its preconditions.
const ErrContractViolation = contract.ErrViolation

// IsContractViolation reports whether r, usually the value returned by
// recover(), stems from a container operation called in violation of its
// preconditions.
func IsContractViolation(r interface{}) bool {
	return contract.IsViolation(r)
}
