// If you are AI: This file defines the error types the AMF decoder raises.
// Every malformed or unsupported input maps to one of these; the decoder
// never panics on untrusted bytes.

package amf

import (
	"errors"
	"fmt"
)

// Dialect identifies which AMF encoding a marker byte belongs to.
type Dialect string

// The two AMF dialects.
const (
	DialectAMF0 Dialect = "AMF0"
	DialectAMF3 Dialect = "AMF3"
)

var (
	// ErrUnexpectedEOF is returned when a read runs past the end of the buffer.
	ErrUnexpectedEOF = errors.New("unexpected end of buffer")

	// ErrAssociativeArray is returned for AMF3 arrays carrying string keys.
	ErrAssociativeArray = errors.New("associative arrays are not supported")
)

// UnknownMarkerError reports a type marker that is not part of the dialect.
type UnknownMarkerError struct {
	Dialect Dialect
	Marker  byte
}

// Error describes the unrecognized marker.
func (e *UnknownMarkerError) Error() string {
	return fmt.Sprintf("unknown %s marker 0x%02x", e.Dialect, e.Marker)
}

// UnsupportedTypeError reports a marker that is recognized but deliberately
// not implemented.
type UnsupportedTypeError struct {
	Dialect Dialect
	Name    string
}

// Error names the unimplemented type.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s type %s is not supported", e.Dialect, e.Name)
}

// MalformedUTF8Error reports a modified UTF-8 violation. Offset is the index
// of the offending sequence start within the string bytes.
type MalformedUTF8Error struct {
	Offset int
}

// Error cites the byte offset of the bad sequence.
func (e *MalformedUTF8Error) Error() string {
	return fmt.Sprintf("malformed input around byte %d", e.Offset)
}

// UnknownExternalizableError reports an externalizable class with no handler.
// Raw holds the complete payload for postmortem inspection.
type UnknownExternalizableError struct {
	Class string
	Raw   []byte
}

// Error names the class and includes the payload hex.
func (e *UnknownExternalizableError) Error() string {
	return fmt.Sprintf("unhandled externalizable %q (raw %x)", e.Class, e.Raw)
}

// TrailingBytesError reports a decode that finished before the end of the
// buffer. Raw holds the complete payload.
type TrailingBytesError struct {
	Pos int
	Len int
	Raw []byte
}

// Error reports how much of the buffer was consumed.
func (e *TrailingBytesError) Error() string {
	return fmt.Sprintf("buffer has not been fully consumed: %d of %d (raw %x)", e.Pos, e.Len, e.Raw)
}

// ReferenceOutOfRangeError reports a back-reference index at or past the
// current table size. Forward references are always malformed.
type ReferenceOutOfRangeError struct {
	Table string
	Index int
}

// Error names the table and the bad index.
func (e *ReferenceOutOfRangeError) Error() string {
	return fmt.Sprintf("%s reference %d out of range", e.Table, e.Index)
}

// UUIDLengthError reports a UUID conversion on a byte array that is not
// exactly 16 bytes long.
type UUIDLengthError struct {
	Len int
}

// Error reports the offending length.
func (e *UUIDLengthError) Error() string {
	return fmt.Sprintf("cannot convert %d bytes to a UUID, want 16", e.Len)
}
