/*
Package pqueue implements a priority queue as a binary heap.

The heap lives in an injectable random-access sequence, laid out in level
order: the children of slot i are 2i+1 and 2i+2. The ordering is a strategy
function. With LessThan, the greatest element is at the top (a max-heap);
with Greater, the smallest one is.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package pqueue

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/internal/contract"
	"github.com/npillmayer/containers/vector"
	"golang.org/x/exp/constraints"
)

// Less is an ordering strategy. Less(a, b) reports whether a ranks below b;
// the element which ranks highest is at the top of the queue.
type Less[T any] func(a, b T) bool

// LessThan is the default strategy, putting the greatest element on top.
func LessThan[T constraints.Ordered](a, b T) bool {
	return a < b
}

// Greater puts the smallest element on top.
func Greater[T constraints.Ordered](a, b T) bool {
	return a > b
}

// PQueue is a priority queue.
type PQueue[T any] struct {
	c    containers.RandomAccessSequence[T]
	less Less[T]
}

// New creates an empty max-heap over a vector.
func New[T constraints.Ordered]() *PQueue[T] {
	return &PQueue[T]{c: vector.New[T](), less: LessThan[T]}
}

// NewMin creates an empty min-heap over a vector.
func NewMin[T constraints.Ordered]() *PQueue[T] {
	return &PQueue[T]{c: vector.New[T](), less: Greater[T]}
}

// Over creates a priority queue on top of c, ordered by less. Elements
// already in c are rearranged into heap order. The queue takes ownership
// of c.
func Over[T any](c containers.RandomAccessSequence[T], less Less[T]) *PQueue[T] {
	contract.Require(c != nil, "pqueue.Over: sequence is nil")
	contract.Require(less != nil, "pqueue.Over: ordering is nil")
	pq := &PQueue[T]{c: c, less: less}
	for i := c.Len()/2 - 1; i >= 0; i-- {
		pq.siftDown(i)
	}
	return pq
}

// Push inserts x.
func (pq *PQueue[T]) Push(x T) {
	pq.c.PushBack(x)
	pq.siftUp(pq.c.Len() - 1)
}

// Pop removes the top element and returns it. pq must not be empty.
func (pq *PQueue[T]) Pop() T {
	contract.Require(!pq.c.IsEmpty(), "pqueue.Pop: queue is empty")
	top := pq.c.At(0)
	last := pq.c.Len() - 1
	if last > 0 {
		pq.c.Set(0, pq.c.At(last))
	}
	pq.c.PopBack()
	if last > 1 {
		pq.siftDown(0)
	}
	return top
}

// Top returns the element which ranks highest. pq must not be empty.
func (pq *PQueue[T]) Top() T {
	contract.Require(!pq.c.IsEmpty(), "pqueue.Top: queue is empty")
	return pq.c.At(0)
}

// Len returns the number of queued elements.
func (pq *PQueue[T]) Len() int {
	return pq.c.Len()
}

// IsEmpty reports whether pq has no elements.
func (pq *PQueue[T]) IsEmpty() bool {
	return pq.c.IsEmpty()
}

// Swap exchanges the contents and orderings of pq and other.
func (pq *PQueue[T]) Swap(other *PQueue[T]) {
	*pq, *other = *other, *pq
}

func (pq *PQueue[T]) siftUp(i int) {
	x := pq.c.At(i)
	for i > 0 {
		parent := (i - 1) / 2
		p := pq.c.At(parent)
		if !pq.less(p, x) {
			break
		}
		pq.c.Set(i, p)
		i = parent
	}
	pq.c.Set(i, x)
}

func (pq *PQueue[T]) siftDown(i int) {
	n := pq.c.Len()
	x := pq.c.At(i)
	for {
		child := 2*i + 1
		if child >= n {
			break
		}
		if r := child + 1; r < n && pq.less(pq.c.At(child), pq.c.At(r)) {
			child = r
		}
		c := pq.c.At(child)
		if !pq.less(x, c) {
			break // parent dominates
		}
		pq.c.Set(i, c)
		i = child
	}
	pq.c.Set(i, x)
}

// Check verifies the heap property: no element ranks above its parent.
func (pq *PQueue[T]) Check() error {
	for i := 1; i < pq.c.Len(); i++ {
		parent := (i - 1) / 2
		if pq.less(pq.c.At(parent), pq.c.At(i)) {
			return errors.Newf("pqueue: slot %d ranks above its parent %d", i, parent)
		}
	}
	return nil
}
