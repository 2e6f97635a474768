/*
Package queue implements a FIFO adapter over a front/back-sequence.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package queue

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/deque"
	"github.com/npillmayer/containers/internal/contract"
)

// Queue restricts a sequence to first-in-first-out access: elements enter
// at the back and leave at the front.
type Queue[T any] struct {
	c containers.FrontBackSequence[T]
}

// New creates an empty queue, storing its elements in a deque.
func New[T any]() *Queue[T] {
	return &Queue[T]{c: deque.New[T]()}
}

// Over creates a queue on top of c, which the queue takes ownership of.
func Over[T any](c containers.FrontBackSequence[T]) *Queue[T] {
	contract.Require(c != nil, "queue.Over: sequence is nil")
	return &Queue[T]{c: c}
}

// Push enqueues x at the back.
func (q *Queue[T]) Push(x T) {
	q.c.PushBack(x)
}

// Pop dequeues the front element and returns it. q must not be empty.
func (q *Queue[T]) Pop() T {
	contract.Require(!q.c.IsEmpty(), "queue.Pop: queue is empty")
	x := q.c.Front()
	q.c.PopFront()
	return x
}

// Front returns the element to be dequeued next. q must not be empty.
func (q *Queue[T]) Front() T {
	contract.Require(!q.c.IsEmpty(), "queue.Front: queue is empty")
	return q.c.Front()
}

// Back returns the element enqueued last. q must not be empty.
func (q *Queue[T]) Back() T {
	contract.Require(!q.c.IsEmpty(), "queue.Back: queue is empty")
	return q.c.Back()
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	return q.c.Len()
}

// IsEmpty reports whether q has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.c.IsEmpty()
}

// Swap exchanges the contents of q and other.
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.c, other.c = other.c, q.c
}
