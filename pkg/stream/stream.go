// Package stream wraps binary streams to ease reading and writing of
// types with a fixed binary form.
//
// A Stream either borrows an already-open io.ReadWriter or owns a file
// opened from a path with a Python-style binary mode string. Reading a
// type requires the Decodable capability (a known encoded size plus a
// decoder for exactly that many bytes), writing requires Encodable (a
// render-to-bytes function); raw byte slices go through the plain
// io.Reader/io.Writer methods. The byte layout of any value is entirely
// the value type's business, Stream defines no framing of its own.
package stream

import (
	"io"
	"os"
)

// Stream is a convenient wrapper around an io.ReadWriter. Every
// operation is a direct blocking call into the wrapped handle and
// advances its position by exactly the bytes consumed or produced.
// A Stream is not safe for concurrent use.
type Stream struct {
	rw     io.ReadWriter
	closed bool
}

// Wrap makes a Stream borrowing an already-open handle. No validation
// of the handle's readability or writability is performed, errors
// surface from the handle itself during reads and writes.
func Wrap(rw io.ReadWriter) *Stream {
	return &Stream{rw: rw}
}

// Open makes a Stream owning a file opened from path with the given
// Python-style mode string ("rb", "wb", "ab+", ...). The mode must
// contain the binary marker "b", otherwise ErrModeNotBinary is
// returned and the path is not touched. Open failures from the OS
// propagate unchanged.
func Open(path string, mode string) (*Stream, error) {
	flag, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, flag, 0644)
	if err != nil {
		return nil, err
	}
	return &Stream{rw: f}, nil
}

// Read implements io.Reader by delegating to the wrapped handle.
func (s *Stream) Read(p []byte) (int, error) {
	return s.rw.Read(p)
}

// Write implements io.Writer by delegating to the wrapped handle. Use
// it for values that already are byte sequences.
func (s *Stream) Write(p []byte) (int, error) {
	return s.rw.Write(p)
}

// ReadN reads exactly n bytes from the wrapped handle. A negative n
// reads to the end of the stream. When fewer than n bytes are
// available the underlying io.EOF or io.ErrUnexpectedEOF is returned
// as is.
func (s *Stream) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return io.ReadAll(s.rw)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.rw, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// ReadValue reads v.Size() bytes from the wrapped handle and decodes
// them into v. Decoder errors propagate unchanged.
func (s *Stream) ReadValue(v Decodable) error {
	buf := make([]byte, v.Size())
	if _, err := io.ReadFull(s.rw, buf); err != nil {
		return err
	}
	return v.DecodeBinary(buf)
}

// WriteValue renders v to its binary form and writes it to the
// wrapped handle, returning whatever the underlying write returns.
func (s *Stream) WriteValue(v Encodable) (int, error) {
	b, err := v.EncodeBinary()
	if err != nil {
		return 0, err
	}
	return s.rw.Write(b)
}

// Close closes the wrapped handle if it implements io.Closer, whether
// the Stream was built with Open or Wrap. Repeated calls are no-ops.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if c, ok := s.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// ReadValue reads a T from s using its Decodable implementation and
// returns it by value.
func ReadValue[T any, P interface {
	Decodable
	*T
}](s *Stream) (T, error) {
	var v T
	err := s.ReadValue(P(&v))
	return v, err
}
