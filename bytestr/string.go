package bytestr

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"
	"math"

	"github.com/npillmayer/containers/internal/contract"
)

// Terminator is the byte which always follows the payload of a String.
const Terminator byte = 0

// Npos denotes "not found" for search results and "up to the end" for
// length arguments.
const Npos = math.MaxInt

// minGrowth is the capacity of an empty string after its first growth.
const minGrowth = 4

// String is a mutable, growable byte string.
//
// A String created by
//
//	String{}
//
// is a valid, empty string. Strings are copied with Clone or Assign; copying
// a String struct by value would share its buffer.
type String struct {
	data   []byte // cap+1 bytes, data[length] is always the terminator
	length int
}

// New creates a string holding the bytes of literal. The capacity of the
// new string equals its length. New("") is the default, empty string.
func New(literal string) *String {
	s := &String{
		data:   make([]byte, len(literal)+1),
		length: len(literal),
	}
	copy(s.data, literal)
	s.data[s.length] = Terminator
	return s
}

// FromBytes creates a string holding a copy of b.
func FromBytes(b []byte) *String {
	s := &String{
		data:   make([]byte, len(b)+1),
		length: len(b),
	}
	copy(s.data, b)
	s.data[s.length] = Terminator
	return s
}

// Clone returns a deep copy of s.
//
// The copy is built as an intermediate string from the payload of s and then
// swapped into the result, so its capacity equals the length of s.
func (s *String) Clone() *String {
	c := &String{}
	tmp := FromBytes(s.payload())
	c.Swap(tmp)
	return c
}

// Assign replaces the contents of s by a copy of src. The copy is complete
// before it is swapped into s; the former buffer of s leaves with the
// temporary.
func (s *String) Assign(src *String) *String {
	tmp := src.Clone()
	s.Swap(tmp)
	return s
}

// Swap exchanges the contents of s and other in O(1).
func (s *String) Swap(other *String) {
	s.data, other.data = other.data, s.data
	s.length, other.length = other.length, s.length
}

// ensure materializes the terminator of a zero-value string.
func (s *String) ensure() {
	if s.data == nil {
		s.data = []byte{Terminator}
		s.length = 0
	}
}

func (s *String) payload() []byte {
	if s == nil || s.data == nil {
		return nil
	}
	return s.data[:s.length]
}

func (s *String) terminate() {
	s.data[s.length] = Terminator
}

// --- Size and capacity -----------------------------------------------------

// Len returns the number of payload bytes.
func (s *String) Len() int {
	if s == nil {
		return 0
	}
	return s.length
}

// Cap returns the number of payload bytes s can hold without reallocating.
// The slot for the terminator is not included.
func (s *String) Cap() int {
	if s == nil || s.data == nil {
		return 0
	}
	return len(s.data) - 1
}

// IsEmpty reports whether s has no payload.
func (s *String) IsEmpty() bool {
	return s.Len() == 0
}

// Reserve makes sure s can hold at least n payload bytes without
// reallocating. It never shrinks a string.
func (s *String) Reserve(n int) {
	s.ensure()
	if n <= s.Cap() {
		return
	}
	data := make([]byte, n+1)
	copy(data, s.data[:s.length+1])
	tracer().Debugf("bytestr: reallocating buffer, capacity %d -> %d", s.Cap(), n)
	s.data = data
}

// Resize changes the length of s to n. If s grows, the new bytes are set to
// ch.
func (s *String) Resize(n int, ch byte) {
	if n < 0 {
		contract.Panicf("bytestr.Resize: negative length %d", n)
	}
	s.ensure()
	if n <= s.length {
		s.length = n
		s.terminate()
		return
	}
	if n > s.Cap() {
		s.Reserve(n)
	}
	for i := s.length; i < n; i++ {
		s.data[i] = ch
	}
	s.length = n
	s.terminate()
}

// Clear drops the payload. Capacity is unchanged.
func (s *String) Clear() {
	s.ensure()
	s.length = 0
	s.terminate()
}

func (s *String) grow() {
	newcap := minGrowth
	if c := s.Cap(); c > 0 {
		newcap = 2 * c
	}
	s.Reserve(newcap)
}

// --- Access ----------------------------------------------------------------

// At returns the byte at index i, which must be in [0, Len()).
func (s *String) At(i int) byte {
	if i < 0 || i >= s.Len() {
		contract.Panicf("bytestr.At: index %d out of range [0,%d)", i, s.Len())
	}
	return s.data[i]
}

// Set overwrites the byte at index i, which must be in [0, Len()).
func (s *String) Set(i int, b byte) {
	if i < 0 || i >= s.Len() {
		contract.Panicf("bytestr.Set: index %d out of range [0,%d)", i, s.Len())
	}
	s.data[i] = b
}

// CStr returns the payload of s followed by the terminator.
//
// The result aliases the buffer of s and is valid until the next modification
// of s. Clients must not write to it.
func (s *String) CStr() []byte {
	if s == nil || s.data == nil {
		return []byte{Terminator}
	}
	return s.data[:s.length+1]
}

// Bytes returns a copy of the payload.
func (s *String) Bytes() []byte {
	return append([]byte{}, s.payload()...)
}

// String returns the payload as a Go string.
func (s *String) String() string {
	return string(s.payload())
}

// All returns an iterator over index/byte pairs of the payload.
func (s *String) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.data[i]) {
				return
			}
		}
	}
}

// --- Modifiers -------------------------------------------------------------

// PushBack appends a single byte.
func (s *String) PushBack(ch byte) {
	s.InsertByte(s.Len(), ch)
}

// AppendByte appends a single byte and returns s.
func (s *String) AppendByte(ch byte) *String {
	s.PushBack(ch)
	return s
}

// Append appends the bytes of literal and returns s.
func (s *String) Append(literal string) *String {
	return s.Insert(s.Len(), literal)
}

// InsertByte inserts ch at offset pos, which must be in [0, Len()].
// Bytes at and behind pos, including the terminator, move one slot towards
// the end.
func (s *String) InsertByte(pos int, ch byte) *String {
	s.ensure()
	if pos < 0 || pos > s.length {
		contract.Panicf("bytestr.InsertByte: position %d out of range [0,%d]", pos, s.length)
	}
	if s.length == s.Cap() {
		s.grow()
	}
	copy(s.data[pos+1:s.length+2], s.data[pos:s.length+1])
	s.data[pos] = ch
	s.length++
	s.terminate()
	return s
}

// Insert inserts the bytes of literal at offset pos, which must be in
// [0, Len()]. If the string is too small, it grows to exactly the size
// needed.
func (s *String) Insert(pos int, literal string) *String {
	s.ensure()
	if pos < 0 || pos > s.length {
		contract.Panicf("bytestr.Insert: position %d out of range [0,%d]", pos, s.length)
	}
	n := len(literal)
	if n == 0 {
		return s
	}
	if n+s.length > s.Cap() {
		s.Reserve(n + s.length)
	}
	copy(s.data[pos+n:s.length+n+1], s.data[pos:s.length+1])
	copy(s.data[pos:pos+n], literal)
	s.length += n
	s.terminate()
	return s
}

// Erase removes up to n bytes starting at pos, which must be in [0, Len()).
// If n is Npos, or at least the number of bytes behind pos, the string is
// truncated at pos.
func (s *String) Erase(pos int, n int) *String {
	if pos < 0 || pos >= s.Len() {
		contract.Panicf("bytestr.Erase: position %d out of range [0,%d)", pos, s.Len())
	}
	if n < 0 {
		contract.Panicf("bytestr.Erase: negative length %d", n)
	}
	if n >= s.length-pos {
		s.length = pos
		s.terminate()
		return s
	}
	copy(s.data[pos:], s.data[pos+n:s.length+1])
	s.length -= n
	s.terminate()
	return s
}
