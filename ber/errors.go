package ber

import "errors"

// Sentinel errors returned by the decode functions in this package.
var (
	// ErrTruncated is returned when a buffer ends before a tag, length or
	// value has been fully read.
	ErrTruncated = errors.New("ber: truncated input")

	// ErrInvalidLength is returned for a long-form length with more than
	// four length-of-length bytes, or an indefinite-form length (not
	// supported: this package only implements definite-form lengths).
	ErrInvalidLength = errors.New("ber: invalid length encoding")

	// ErrInvalidInteger is returned when an INTEGER's content is empty or
	// longer than four bytes.
	ErrInvalidInteger = errors.New("ber: invalid integer encoding")

	// ErrInvalidNull is returned when a NULL's length is non-zero.
	ErrInvalidNull = errors.New("ber: invalid null encoding")

	// ErrInvalidOID is returned when an OBJECT IDENTIFIER has no
	// sub-identifier bytes, or a sub-identifier group never terminates.
	// EncodeOID also returns it for an OID with fewer than two components
	// or invalid first two components.
	ErrInvalidOID = errors.New("ber: invalid object identifier encoding")
)

// UnexpectedTagError is returned when a decoder reads a tag byte that
// doesn't match what the caller expected.
type UnexpectedTagError struct {
	Expected byte
	Got      byte
}

func (e *UnexpectedTagError) Error() string {
	return "ber: unexpected tag: expected " + byteToHex(e.Expected) + ", got " + byteToHex(e.Got)
}

func byteToHex(b byte) string {
	const digits = "0123456789abcdef"
	return "0x" + string([]byte{digits[b>>4], digits[b&0x0f]})
}
