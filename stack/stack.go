/*
Package stack implements a LIFO adapter over a back-sequence.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package stack

import (
	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/deque"
	"github.com/npillmayer/containers/internal/contract"
)

// Stack restricts a sequence to last-in-first-out access.
type Stack[T any] struct {
	c containers.BackSequence[T]
}

// New creates an empty stack, storing its elements in a deque.
func New[T any]() *Stack[T] {
	return &Stack[T]{c: deque.New[T]()}
}

// Over creates a stack on top of c. Elements already in c are on the
// stack, with the back of c as its top. The stack takes ownership of c.
func Over[T any](c containers.BackSequence[T]) *Stack[T] {
	contract.Require(c != nil, "stack.Over: sequence is nil")
	return &Stack[T]{c: c}
}

// Push puts x on top of the stack.
func (s *Stack[T]) Push(x T) {
	s.c.PushBack(x)
}

// Pop removes the top element and returns it. s must not be empty.
func (s *Stack[T]) Pop() T {
	contract.Require(!s.c.IsEmpty(), "stack.Pop: stack is empty")
	x := s.c.Back()
	s.c.PopBack()
	return x
}

// Top returns the top element. s must not be empty.
func (s *Stack[T]) Top() T {
	contract.Require(!s.c.IsEmpty(), "stack.Top: stack is empty")
	return s.c.Back()
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	return s.c.Len()
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.c.IsEmpty()
}

// Swap exchanges the contents of s and other.
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.c, other.c = other.c, s.c
}
