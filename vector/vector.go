package vector

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
	"slices"

	"github.com/npillmayer/containers/internal/contract"
)

// minGrowth is the capacity of an empty vector after its first growth.
const minGrowth = 4

// Vector is a growable buffer of elements of type T.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid, empty vector with capacity 0.
//
// Vectors have value semantics for copying: Clone and Assign produce deep
// copies, i.e. copies which do not share storage with their source.
// (Elements themselves are copied by assignment, so pointer elements will
// still point to the same objects.)
//
//	Operation          |  Complexity
//	-------------------+----------------
//	At, Set, Len, Cap  |  O(1)
//	PushBack           |  O(1) amortized
//	PopBack            |  O(1)
//	Insert, Erase      |  O(n)
//	Reserve, Clone     |  O(n)
//	Swap               |  O(1)
type Vector[T any] struct {
	buf []T // allocated storage, len(buf) is the capacity
	n   int // live elements occupy buf[:n]
}

// New creates an empty vector.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewFilled creates a vector holding count copies of value.
// Capacity will be exactly count.
func NewFilled[T any](count int, value T) *Vector[T] {
	if count < 0 {
		contract.Panicf("vector.NewFilled: negative count %d", count)
	}
	v := &Vector[T]{}
	v.Reserve(count)
	for i := 0; i < count; i++ {
		v.PushBack(value)
	}
	return v
}

// FromSeq creates a vector by appending every element of seq, in order.
// The resulting length equals the number of elements produced by seq.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	if seq == nil {
		return v
	}
	for x := range seq {
		v.PushBack(x)
	}
	return v
}

// FromSlice creates a vector from a list of elements.
func FromSlice[T any](xs ...T) *Vector[T] {
	return FromSeq(slices.Values(xs))
}

// Clone returns a deep copy of v. The copy has the same length as v and a
// capacity at least as large as v's.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	if v == nil {
		return c
	}
	c.Reserve(v.Cap())
	for _, x := range v.buf[:v.n] {
		c.PushBack(x)
	}
	return c
}

// Assign replaces the contents of v by a copy of src.
//
// The copy is built completely before it is swapped into v; v's previous
// storage is dropped together with the temporary copy. Assigning a vector
// to itself is harmless.
func (v *Vector[T]) Assign(src *Vector[T]) *Vector[T] {
	tmp := src.Clone()
	v.Swap(tmp)
	return v
}

// Swap exchanges the storage of v and other. No elements are copied.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf, other.buf = other.buf, v.buf
	v.n, other.n = other.n, v.n
}

// --- Size and capacity -----------------------------------------------------

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.n
}

// Cap returns the number of elements v can hold without reallocating.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.buf)
}

// IsEmpty reports whether v has no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Reserve makes sure v can hold at least n elements without reallocating.
//
// If n does not exceed the current capacity, Reserve does nothing. Otherwise
// storage for exactly n elements is allocated and the live elements are
// copied over in order. This is the only place where a vector grows, and it
// invalidates every position issued so far.
func (v *Vector[T]) Reserve(n int) {
	if n <= len(v.buf) {
		return
	}
	buf := make([]T, n)
	copy(buf, v.buf[:v.n])
	tracer().Debugf("vector: reallocating storage, capacity %d -> %d", len(v.buf), n)
	v.buf = buf
}

// Resize changes the length of v to n.
//
// If n is smaller than the current length, trailing elements are dropped.
// If n is larger, capacity is reserved as needed and the new trailing slots
// are set to val.
func (v *Vector[T]) Resize(n int, val T) {
	if n < 0 {
		contract.Panicf("vector.Resize: negative length %d", n)
	}
	if n < v.n {
		clear(v.buf[n:v.n])
		v.n = n
		return
	}
	if n > len(v.buf) {
		v.Reserve(n)
	}
	for v.n < n {
		v.buf[v.n] = val
		v.n++
	}
}

// Clear drops all elements. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	clear(v.buf[:v.n])
	v.n = 0
}

func (v *Vector[T]) grow() {
	newcap := minGrowth
	if len(v.buf) > 0 {
		newcap = 2 * len(v.buf)
	}
	v.Reserve(newcap)
}

// --- Element access --------------------------------------------------------

// At returns the element at index i, which must be in [0, Len()).
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.n {
		contract.Panicf("vector.At: index %d out of range [0,%d)", i, v.n)
	}
	return v.buf[i]
}

// Set overwrites the element at index i, which must be in [0, Len()).
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.n {
		contract.Panicf("vector.Set: index %d out of range [0,%d)", i, v.n)
	}
	v.buf[i] = x
}

// Ref returns a pointer to the element at index i, which must be in
// [0, Len()). The pointer refers to the current storage and must not be
// used after v reallocates.
func (v *Vector[T]) Ref(i int) *T {
	if i < 0 || i >= v.n {
		contract.Panicf("vector.Ref: index %d out of range [0,%d)", i, v.n)
	}
	return &v.buf[i]
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	contract.Require(v.n > 0, "vector.Front: vector is empty")
	return v.buf[0]
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	contract.Require(v.n > 0, "vector.Back: vector is empty")
	return v.buf[v.n-1]
}

// --- Modifiers -------------------------------------------------------------

// PushBack appends x, growing the vector if it is full.
func (v *Vector[T]) PushBack(x T) {
	if v.n == len(v.buf) {
		v.grow()
	}
	v.buf[v.n] = x
	v.n++
}

// PopBack removes the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	contract.Require(v.n > 0, "vector.PopBack: vector is empty")
	v.n--
	var zero T
	v.buf[v.n] = zero
}

// Insert inserts x in front of the element at pos, which must be a position
// of v in [Begin(), End()]. It returns the position of the inserted element.
//
// If v is full it grows before elements are shifted. pos is re-expressed as
// an offset, therefore it still denotes the same logical slot after the
// reallocation, but every other position held by the client is invalid.
func (v *Vector[T]) Insert(pos Pos[T], x T) Pos[T] {
	v.checkOwner(pos, "Insert")
	off := pos.off
	if off < 0 || off > v.n {
		contract.Panicf("vector.Insert: position %d out of range [0,%d]", off, v.n)
	}
	if v.n == len(v.buf) {
		v.grow()
	}
	// copy handles overlapping ranges like memmove
	copy(v.buf[off+1:v.n+1], v.buf[off:v.n])
	v.buf[off] = x
	v.n++
	return Pos[T]{vec: v, off: off}
}

// Erase removes the element at pos, which must be a position of v in
// [Begin(), End()). Every element behind pos moves one slot towards the front,
// preserving order.
//
// Erase returns the position now occupied by the former successor of the
// erased element, which is End() if the last element has been erased.
func (v *Vector[T]) Erase(pos Pos[T]) Pos[T] {
	v.checkOwner(pos, "Erase")
	contract.Require(v.n > 0, "vector.Erase: vector is empty")
	off := pos.off
	if off < 0 || off >= v.n {
		contract.Panicf("vector.Erase: position %d out of range [0,%d)", off, v.n)
	}
	copy(v.buf[off:v.n-1], v.buf[off+1:v.n])
	v.n--
	var zero T
	v.buf[v.n] = zero
	return Pos[T]{vec: v, off: off}
}

func (v *Vector[T]) checkOwner(pos Pos[T], op string) {
	if pos.vec != v {
		contract.Panicf("vector.%s: position does not belong to this vector", op)
	}
}

// --- Iteration -------------------------------------------------------------

// All returns an iterator over index/element pairs of v, in order.
//
// v must not be modified structurally during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of v, in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (v *Vector[T]) Slice() []T {
	if v.Len() == 0 {
		return []T{}
	}
	return slices.Clone(v.buf[:v.n])
}

// String returns a printable representation of the live elements.
func (v *Vector[T]) String() string {
	if v == nil {
		return "[]"
	}
	return fmt.Sprint(v.buf[:v.n])
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacities are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.view(), b.view())
}

// EqualFunc is like Equal, but uses eq to compare elements.
func EqualFunc[T any](a, b *Vector[T], eq func(T, T) bool) bool {
	return slices.EqualFunc(a.view(), b.view(), eq)
}

func (v *Vector[T]) view() []T {
	if v == nil {
		return nil
	}
	return v.buf[:v.n]
}
