/*
Package list implements a doubly linked list as a ring with a sentinel.

Nodes are kept in an arena and linked by their arena index. Index 0 is the
sentinel: its successor is the first element, its predecessor the last one,
and it is never removed. Erased nodes are recycled for later inserts.

Inserting and erasing at a known position is O(1). Len walks the ring and is
O(n); the list keeps no element count.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package list

import (
	"iter"

	"github.com/npillmayer/containers/internal/contract"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'containers'
func tracer() tracing.Trace {
	return tracing.Select("containers")
}

const sentinel = 0

// unlinked marks arena slots which are on the free list.
const unlinked = -1

type node[T any] struct {
	val        T
	prev, next int
}

// List is a doubly linked list. The zero value is an empty list, ready to
// use.
type List[T any] struct {
	nodes []node[T] // arena, nodes[0] is the sentinel
	free  []int     // recycled arena slots
}

// New creates an empty list.
func New[T any]() *List[T] {
	l := &List[T]{}
	l.init()
	return l
}

func (l *List[T]) init() {
	if l.nodes == nil {
		l.nodes = []node[T]{{prev: sentinel, next: sentinel}}
	}
}

func (l *List[T]) alloc(x T) int {
	if k := len(l.free); k > 0 {
		i := l.free[k-1]
		l.free = l.free[:k-1]
		l.nodes[i] = node[T]{val: x}
		return i
	}
	l.nodes = append(l.nodes, node[T]{val: x})
	return len(l.nodes) - 1
}

func (l *List[T]) release(i int) {
	l.nodes[i] = node[T]{prev: unlinked, next: unlinked}
	l.free = append(l.free, i)
}

// --- Positions -------------------------------------------------------------

// Elem is a position within a list. It stays valid until the element it
// denotes is erased (or the list is cleared or swapped).
type Elem[T any] struct {
	list *List[T]
	idx  int
}

// Begin returns the position of the first element, which is End() for an
// empty list.
func (l *List[T]) Begin() Elem[T] {
	l.init()
	return Elem[T]{list: l, idx: l.nodes[sentinel].next}
}

// End returns the sentinel position behind the last element.
func (l *List[T]) End() Elem[T] {
	l.init()
	return Elem[T]{list: l, idx: sentinel}
}

// Next returns the position following e. The successor of the last element
// is End(), and the successor of End() is the first element.
func (e Elem[T]) Next() Elem[T] {
	contract.Require(e.list != nil, "list.Elem.Next: position is not attached to a list")
	e.list.checkElem(e, "Elem.Next")
	return Elem[T]{list: e.list, idx: e.list.nodes[e.idx].next}
}

// Prev returns the position preceding e.
func (e Elem[T]) Prev() Elem[T] {
	contract.Require(e.list != nil, "list.Elem.Prev: position is not attached to a list")
	e.list.checkElem(e, "Elem.Prev")
	return Elem[T]{list: e.list, idx: e.list.nodes[e.idx].prev}
}

// Get returns the value at e. e must not be End().
func (e Elem[T]) Get() T {
	contract.Require(e.list != nil, "list.Elem.Get: position is not attached to a list")
	contract.Require(e.idx != sentinel, "list.Elem.Get: cannot dereference End()")
	return e.list.nodes[e.idx].val
}

// Set overwrites the value at e. e must not be End().
func (e Elem[T]) Set(x T) {
	contract.Require(e.list != nil, "list.Elem.Set: position is not attached to a list")
	contract.Require(e.idx != sentinel, "list.Elem.Set: cannot dereference End()")
	e.list.nodes[e.idx].val = x
}

// Equal reports whether e and f denote the same node of the same list.
func (e Elem[T]) Equal(f Elem[T]) bool {
	return e.list == f.list && e.idx == f.idx
}

// Index returns the arena slot of e. The sentinel has index 0.
func (e Elem[T]) Index() int {
	return e.idx
}

func (l *List[T]) checkElem(e Elem[T], op string) {
	if e.list != l {
		contract.Panicf("list.%s: position does not belong to this list", op)
	}
	if e.idx < 0 || e.idx >= len(l.nodes) || l.nodes[e.idx].next == unlinked {
		contract.Panicf("list.%s: position %d is not linked", op, e.idx)
	}
}

// --- Modifiers -------------------------------------------------------------

// Insert links a new node holding x in front of pos and returns its
// position. Other positions stay valid.
func (l *List[T]) Insert(pos Elem[T], x T) Elem[T] {
	l.init()
	l.checkElem(pos, "Insert")
	i := l.alloc(x)
	cur := pos.idx
	prev := l.nodes[cur].prev
	l.nodes[i].next = cur
	l.nodes[i].prev = prev
	l.nodes[cur].prev = i
	l.nodes[prev].next = i
	return Elem[T]{list: l, idx: i}
}

// Erase unlinks the node at pos, which must not be End(), and returns the
// position of its successor.
func (l *List[T]) Erase(pos Elem[T]) Elem[T] {
	l.init()
	l.checkElem(pos, "Erase")
	contract.Require(pos.idx != sentinel, "list.Erase: cannot erase End()")
	cur := pos.idx
	prev, next := l.nodes[cur].prev, l.nodes[cur].next
	l.nodes[prev].next = next
	l.nodes[next].prev = prev
	l.release(cur)
	return Elem[T]{list: l, idx: next}
}

// PushBack appends x.
func (l *List[T]) PushBack(x T) {
	l.Insert(l.End(), x)
}

// PushFront prepends x.
func (l *List[T]) PushFront(x T) {
	l.Insert(l.Begin(), x)
}

// PopBack removes the last element. l must not be empty.
func (l *List[T]) PopBack() {
	contract.Require(!l.IsEmpty(), "list.PopBack: list is empty")
	l.Erase(l.End().Prev())
}

// PopFront removes the first element. l must not be empty.
func (l *List[T]) PopFront() {
	contract.Require(!l.IsEmpty(), "list.PopFront: list is empty")
	l.Erase(l.Begin())
}

// Front returns the first element. l must not be empty.
func (l *List[T]) Front() T {
	contract.Require(!l.IsEmpty(), "list.Front: list is empty")
	return l.nodes[l.nodes[sentinel].next].val
}

// Back returns the last element. l must not be empty.
func (l *List[T]) Back() T {
	contract.Require(!l.IsEmpty(), "list.Back: list is empty")
	return l.nodes[l.nodes[sentinel].prev].val
}

// Clear removes all elements and resets the arena.
func (l *List[T]) Clear() {
	if l.nodes == nil {
		return
	}
	tracer().Debugf("list: clearing arena of %d slots", len(l.nodes))
	clear(l.nodes)
	l.nodes = l.nodes[:1]
	l.nodes[sentinel] = node[T]{prev: sentinel, next: sentinel}
	l.free = l.free[:0]
}

// Resize changes the number of elements to n, dropping trailing elements or
// appending copies of val.
func (l *List[T]) Resize(n int, val T) {
	if n < 0 {
		contract.Panicf("list.Resize: negative length %d", n)
	}
	e, end := l.Begin(), l.End()
	k := 0
	for k < n && !e.Equal(end) {
		k++
		e = e.Next()
	}
	if k == n {
		for !e.Equal(end) {
			e = l.Erase(e)
		}
		return
	}
	for ; k < n; k++ {
		l.PushBack(val)
	}
}

// Swap exchanges the contents of l and other. Positions of either list are
// invalid afterwards.
func (l *List[T]) Swap(other *List[T]) {
	l.nodes, other.nodes = other.nodes, l.nodes
	l.free, other.free = other.free, l.free
}

// Clone returns a deep copy of l, built by appending every element of l.
func (l *List[T]) Clone() *List[T] {
	c := New[T]()
	for x := range l.All() {
		c.PushBack(x)
	}
	return c
}

// Assign replaces the contents of l by a copy of src (copy and swap).
func (l *List[T]) Assign(src *List[T]) *List[T] {
	tmp := src.Clone()
	l.Swap(tmp)
	return l
}

// --- Size and iteration ----------------------------------------------------

// IsEmpty reports whether l has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.nodes == nil || l.nodes[sentinel].next == sentinel
}

// Len counts the elements of l in O(n).
func (l *List[T]) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// All returns an iterator over the elements of l, front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.nodes == nil {
			return
		}
		for i := l.nodes[sentinel].next; i != sentinel; i = l.nodes[i].next {
			if !yield(l.nodes[i].val) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of l, back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.nodes == nil {
			return
		}
		for i := l.nodes[sentinel].prev; i != sentinel; i = l.nodes[i].prev {
			if !yield(l.nodes[i].val) {
				return
			}
		}
	}
}
