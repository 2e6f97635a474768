package bytestr

import (
	"bytes"

	"github.com/npillmayer/containers/internal/contract"
)

// FindByte returns the offset of the first occurrence of b at or behind
// from, or Npos if there is none. from must be in [0, Len()).
func (s *String) FindByte(b byte, from int) int {
	if from < 0 || from >= s.Len() {
		contract.Panicf("bytestr.FindByte: start %d out of range [0,%d)", from, s.Len())
	}
	i := bytes.IndexByte(s.data[from:s.length], b)
	if i < 0 {
		return Npos
	}
	return from + i
}

// Find returns the offset of the first occurrence of literal at or behind
// from, or Npos if there is none. from must be in [0, Len()).
//
// An empty literal is found at from.
func (s *String) Find(literal string, from int) int {
	if from < 0 || from >= s.Len() {
		contract.Panicf("bytestr.Find: start %d out of range [0,%d)", from, s.Len())
	}
	i := bytes.Index(s.data[from:s.length], []byte(literal))
	if i < 0 {
		return Npos
	}
	return from + i
}
