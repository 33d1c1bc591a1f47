package codec

import "encoding/binary"

// Writer builds calldata and response blobs in the fixed binary layout.
// Write methods append to an internal buffer; Bytes returns the result.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with the given capacity hint.
func NewWriter(sizeHint int) *Writer {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Writer{buf: make([]byte, 0, sizeHint)}
}

// WriteSelector appends a 4-byte method selector.
func (w *Writer) WriteSelector(s Selector) {
	w.buf = append(w.buf, s[:]...)
}

// WriteU256 appends a 256-bit unsigned integer, big-endian.
func (w *Writer) WriteU256(v U256) {
	w.buf = append(w.buf, v[:]...)
}

// WriteAddress appends a 32-byte identifier.
func (w *Writer) WriteAddress(a Address) {
	w.buf = append(w.buf, a[:]...)
}

// WriteBool appends a boolean as a single byte (0x01 / 0x00).
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// WriteString appends text as a 2-byte big-endian length followed by the raw
// bytes. Returns ErrStringTooLong if the text exceeds MaxStringLen bytes.
func (w *Writer) WriteString(s string) error {
	if len(s) > MaxStringLen {
		return ErrStringTooLong
	}
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte {
	return w.buf
}
