/*
Package deque implements a double-ended queue on top of a ring buffer.

A Deque is the default store of the stack and queue adapters. Pushing and
popping at either end is O(1) amortized; elements may be accessed by index
in O(1).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package deque

import (
	"iter"

	"github.com/npillmayer/containers/internal/contract"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

// minGrowth is the capacity of an empty deque after its first growth.
// Capacities are always powers of two.
const minGrowth = 4

// Deque is a double-ended queue. The zero value is an empty deque, ready to
// use.
type Deque[T any] struct {
	buf  []T // ring storage, len(buf) is 0 or a power of two
	head int // index of the front element in buf
	n    int // number of elements
}

// New creates an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{}
}

// Len returns the number of elements.
func (d *Deque[T]) Len() int {
	return d.n
}

// IsEmpty reports whether d holds no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.n == 0
}

// Cap returns the number of elements d can hold without reallocating.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

func (d *Deque[T]) slot(i int) int {
	return (d.head + i) & (len(d.buf) - 1)
}

func (d *Deque[T]) grow() {
	newcap := minGrowth
	if len(d.buf) > 0 {
		newcap = 2 * len(d.buf)
	}
	buf := make([]T, newcap)
	if d.n > 0 {
		// unroll the ring into the front of the new storage
		k := copy(buf, d.buf[d.head:])
		if k < d.n {
			copy(buf[k:], d.buf[:d.n-k])
		}
	}
	tracer().Debugf("deque: reallocating ring, capacity %d -> %d", len(d.buf), newcap)
	d.buf = buf
	d.head = 0
}

// PushBack appends x at the back.
func (d *Deque[T]) PushBack(x T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.buf[d.slot(d.n)] = x
	d.n++
}

// PushFront prepends x at the front.
func (d *Deque[T]) PushFront(x T) {
	if d.n == len(d.buf) {
		d.grow()
	}
	d.head = (d.head + len(d.buf) - 1) & (len(d.buf) - 1)
	d.buf[d.head] = x
	d.n++
}

// PopBack removes the back element. d must not be empty.
func (d *Deque[T]) PopBack() {
	contract.Require(d.n > 0, "deque.PopBack: deque is empty")
	var zero T
	d.buf[d.slot(d.n-1)] = zero
	d.n--
}

// PopFront removes the front element. d must not be empty.
func (d *Deque[T]) PopFront() {
	contract.Require(d.n > 0, "deque.PopFront: deque is empty")
	var zero T
	d.buf[d.head] = zero
	d.head = d.slot(1)
	d.n--
}

// Front returns the front element. d must not be empty.
func (d *Deque[T]) Front() T {
	contract.Require(d.n > 0, "deque.Front: deque is empty")
	return d.buf[d.head]
}

// Back returns the back element. d must not be empty.
func (d *Deque[T]) Back() T {
	contract.Require(d.n > 0, "deque.Back: deque is empty")
	return d.buf[d.slot(d.n-1)]
}

// At returns the element at index i, counted from the front.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.n {
		contract.Panicf("deque.At: index %d out of range [0,%d)", i, d.n)
	}
	return d.buf[d.slot(i)]
}

// Set overwrites the element at index i, counted from the front.
func (d *Deque[T]) Set(i int, x T) {
	if i < 0 || i >= d.n {
		contract.Panicf("deque.Set: index %d out of range [0,%d)", i, d.n)
	}
	d.buf[d.slot(i)] = x
}

// Clear drops all elements, keeping the storage.
func (d *Deque[T]) Clear() {
	clear(d.buf)
	d.head, d.n = 0, 0
}

// Swap exchanges the contents of d and other in O(1).
func (d *Deque[T]) Swap(other *Deque[T]) {
	*d, *other = *other, *d
}

// Clone returns a deep copy of d.
func (d *Deque[T]) Clone() *Deque[T] {
	c := &Deque[T]{}
	for _, x := range d.All() {
		c.PushBack(x)
	}
	return c
}

// All returns an iterator over index/element pairs, front to back.
func (d *Deque[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(i, d.buf[d.slot(i)]) {
				return
			}
		}
	}
}
