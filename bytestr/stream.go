package bytestr

import (
	"io"

	"github.com/cockroachdb/errors"
)

// ReadWord clears s and reads bytes from r into it until an ASCII white
// space byte or the end of input is reached. The delimiter is consumed but
// not stored.
//
// ReadWord returns io.EOF only if the input has been exhausted before a
// single byte could be read. Other read errors are returned wrapped.
func (s *String) ReadWord(r io.ByteReader) error {
	s.Clear()
	return s.readUntil(r, isSpace)
}

// ReadLine clears s and reads bytes from r into it until a newline or the
// end of input is reached. Spaces are kept; the newline is consumed but not
// stored. Errors are reported as for ReadWord.
func (s *String) ReadLine(r io.ByteReader) error {
	s.Clear()
	return s.readUntil(r, func(b byte) bool { return b == '\n' })
}

func (s *String) readUntil(r io.ByteReader, isDelim func(byte) bool) error {
	consumed := false
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			if consumed {
				return nil
			}
			return io.EOF
		} else if err != nil {
			return errors.Wrap(err, "bytestr: reading from input")
		}
		consumed = true
		if isDelim(b) {
			return nil
		}
		s.PushBack(b)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// WriteTo writes the payload of s to w. The terminator is never written.
// WriteTo implements io.WriterTo.
func (s *String) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(s.payload())
	if err != nil {
		return int64(n), errors.Wrap(err, "bytestr: writing payload")
	}
	return int64(n), nil
}
