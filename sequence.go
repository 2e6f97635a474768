package containers

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// BackSequence is the contract a stack binds to.
//
// Back and PopBack must not be called on an empty sequence.
type BackSequence[T any] interface {
	PushBack(x T)
	PopBack()
	Back() T
	Len() int
	IsEmpty() bool
}

// FrontBackSequence is the contract a queue binds to: elements enter at the
// back and leave at the front.
type FrontBackSequence[T any] interface {
	BackSequence[T]
	PopFront()
	Front() T
}

// RandomAccessSequence is the contract a priority queue binds to. Indices
// are zero-based and must be smaller than Len().
type RandomAccessSequence[T any] interface {
	BackSequence[T]
	At(i int) T
	Set(i int, x T)
}
