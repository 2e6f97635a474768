package vector

import "github.com/npillmayer/containers/internal/contract"

// Pos is a position within a vector.
//
// A Pos is only meaningful for the vector which issued it, and only until
// that vector reallocates or erases an element at or before the position.
// Positions are values and may be compared with Equal.
type Pos[T any] struct {
	vec *Vector[T]
	off int
}

// Begin returns the position of the first element, which equals End() for
// an empty vector.
func (v *Vector[T]) Begin() Pos[T] {
	return Pos[T]{vec: v, off: 0}
}

// End returns the position behind the last element.
func (v *Vector[T]) End() Pos[T] {
	return Pos[T]{vec: v, off: v.Len()}
}

// PosAt returns the position of index i, which must be in [0, Len()].
func (v *Vector[T]) PosAt(i int) Pos[T] {
	if i < 0 || i > v.Len() {
		contract.Panicf("vector.PosAt: index %d out of range [0,%d]", i, v.Len())
	}
	return Pos[T]{vec: v, off: i}
}

// Offset returns the index p denotes.
func (p Pos[T]) Offset() int {
	return p.off
}

// Get returns the element at p.
func (p Pos[T]) Get() T {
	contract.Require(p.vec != nil, "vector.Pos.Get: position is not attached to a vector")
	return p.vec.At(p.off)
}

// Set overwrites the element at p.
func (p Pos[T]) Set(x T) {
	contract.Require(p.vec != nil, "vector.Pos.Set: position is not attached to a vector")
	p.vec.Set(p.off, x)
}

// Next returns the position following p. It is not checked against End().
func (p Pos[T]) Next() Pos[T] {
	return Pos[T]{vec: p.vec, off: p.off + 1}
}

// Prev returns the position preceding p. It is not checked against Begin().
func (p Pos[T]) Prev() Pos[T] {
	return Pos[T]{vec: p.vec, off: p.off - 1}
}

// Equal reports whether p and q denote the same slot of the same vector.
func (p Pos[T]) Equal(q Pos[T]) bool {
	return p.vec == q.vec && p.off == q.off
}

// IsEnd reports whether p is the end position of its vector.
func (p Pos[T]) IsEnd() bool {
	return p.vec != nil && p.off == p.vec.Len()
}
