package codec

import "errors"

var (
	// ErrShortBuffer indicates the input ended before the declared field width.
	ErrShortBuffer = errors.New("codec: short buffer")

	// ErrBadLength indicates a byte slice has the wrong length for the target type.
	ErrBadLength = errors.New("codec: invalid length")

	// ErrStringTooLong indicates a string exceeds the 16-bit length prefix.
	ErrStringTooLong = errors.New("codec: string too long")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("codec: required parameter is nil")
)
