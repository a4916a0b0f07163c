// If you are AI: This file implements the positional reads the decoder makes
// over its payload buffer. Every read is bounds-checked; truncated input
// returns ErrUnexpectedEOF instead of panicking.

package amf

import (
	"encoding/binary"
	"math"
)

// readByte consumes and returns the next byte.
func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, ErrUnexpectedEOF
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

// read consumes the next n bytes and returns them as a copy.
func (d *Decoder) read(n int) ([]byte, error) {
	if n < 0 || n > len(d.data)-d.pos {
		return nil, ErrUnexpectedEOF
	}
	out := make([]byte, n)
	copy(out, d.data[d.pos:d.pos+n])
	d.pos += n
	return out, nil
}

// readBool consumes one byte; only 0x01 is true.
func (d *Decoder) readBool() (bool, error) {
	b, err := d.readByte()
	return b == 1, err
}

// readUint16 consumes two bytes, most significant first.
func (d *Decoder) readUint16() (uint16, error) {
	b, err := d.read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// readUint32 consumes four bytes, most significant first.
func (d *Decoder) readUint32() (uint32, error) {
	b, err := d.read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// readFloat64 consumes an IEEE-754 double in big-endian byte order.
func (d *Decoder) readFloat64() (float64, error) {
	b, err := d.read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// remaining returns the number of unread bytes. Declared collection sizes
// are checked against it before allocation since every encoded element
// occupies at least one byte.
func (d *Decoder) remaining() int {
	return len(d.data) - d.pos
}
