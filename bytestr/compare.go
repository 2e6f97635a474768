package bytestr

import "bytes"

// Compare compares the payloads of s and t byte-wise, lexicographically.
// The result is 0 if s == t, -1 if s < t, and +1 if s > t.
func (s *String) Compare(t *String) int {
	return bytes.Compare(s.payload(), t.payload())
}

// Equal reports whether s and t hold the same payload.
func (s *String) Equal(t *String) bool {
	return bytes.Equal(s.payload(), t.payload())
}

// Greater reports whether s orders after t.
func (s *String) Greater(t *String) bool {
	return s.Compare(t) > 0
}

// The remaining relations are derived from Equal and Greater only, so that
// all of them agree on a single ordering.

// GreaterEqual reports whether s does not order before t.
func (s *String) GreaterEqual(t *String) bool {
	return s.Greater(t) || s.Equal(t)
}

// Less reports whether s orders before t.
func (s *String) Less(t *String) bool {
	return !s.GreaterEqual(t)
}

// LessEqual reports whether s does not order after t.
func (s *String) LessEqual(t *String) bool {
	return !s.Greater(t)
}

// NotEqual reports whether s and t differ.
func (s *String) NotEqual(t *String) bool {
	return !s.Equal(t)
}
