package codec

import (
	"encoding/binary"
	"fmt"
)

// Reader decodes calldata and response blobs. Every read is bounds-checked;
// a truncated buffer yields ErrShortBuffer rather than a zero value.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader over data. The slice is not copied.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// take returns the next n bytes or fails if fewer remain.
func (r *Reader) take(n int) ([]byte, error) {
	if len(r.data)-r.off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortBuffer, n, r.off, len(r.data)-r.off)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// ReadSelector reads a 4-byte method selector.
func (r *Reader) ReadSelector() (Selector, error) {
	var s Selector
	b, err := r.take(SelectorLen)
	if err != nil {
		return s, err
	}
	copy(s[:], b)
	return s, nil
}

// ReadU256 reads a big-endian 256-bit unsigned integer.
func (r *Reader) ReadU256() (U256, error) {
	var u U256
	b, err := r.take(U256Len)
	if err != nil {
		return u, err
	}
	copy(u[:], b)
	return u, nil
}

// ReadAddress reads a 32-byte identifier.
func (r *Reader) ReadAddress() (Address, error) {
	var a Address
	b, err := r.take(AddressLen)
	if err != nil {
		return a, err
	}
	copy(a[:], b)
	return a, nil
}

// ReadBool reads a single byte; any non-zero value is true.
func (r *Reader) ReadBool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

// ReadString reads a 2-byte big-endian length prefix followed by that many
// bytes of UTF-8 text.
func (r *Reader) ReadString() (string, error) {
	b, err := r.take(2)
	if err != nil {
		return "", err
	}
	n := int(binary.BigEndian.Uint16(b))
	v, err := r.take(n)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}
