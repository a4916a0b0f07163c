// If you are AI: This file implements the AMF3 side of the decoder: the
// marker dispatch, the U29 variable-length integer and the tagged readers.

package amf

import (
	"fmt"
	"time"
)

// decodeAMF3 parses one AMF3 value at the cursor.
func (d *Decoder) decodeAMF3() (Value, error) {
	marker, err := d.readByte()
	if err != nil {
		return nil, err
	}
	var value Value
	switch marker {
	case markerAMF3Undefined:
		value = Undefined
	case markerAMF3Null:
		value = nil
	case markerAMF3False:
		value = false
	case markerAMF3True:
		value = true
	case markerAMF3Integer:
		value, err = d.readIntegerAMF3()
	case markerAMF3Double:
		value, err = d.readFloat64()
	case markerAMF3String:
		value, err = d.readStringAMF3()
	case markerAMF3Date:
		value, err = d.readDateAMF3()
	case markerAMF3Array:
		value, err = d.readArrayAMF3()
	case markerAMF3Object:
		value, err = d.readObjectAMF3()
	case markerAMF3ByteArray:
		value, err = d.readByteArrayAMF3()
	case markerAMF3XMLDoc, markerAMF3XML, markerAMF3VectorInt,
		markerAMF3VectorUint, markerAMF3VectorDouble, markerAMF3VectorObject,
		markerAMF3Dictionary:
		return nil, &UnsupportedTypeError{Dialect: DialectAMF3, Name: amf3TypeName(marker)}
	default:
		return nil, &UnknownMarkerError{Dialect: DialectAMF3, Marker: marker}
	}
	if err != nil {
		return nil, err
	}
	d.tracer.Debugf("AMF3 %s as %s", amf3TypeName(marker), renderValue(value))
	return value, nil
}

// readU29 parses the AMF3 variable-length integer: up to three bytes
// contribute 7 bits each while their high bit is set, and after three
// continuations a fourth byte contributes all 8 bits. The 29-bit result is
// raw and unsigned; tag consumers use it directly.
func (d *Decoder) readU29() (uint32, error) {
	var value uint32
	b, err := d.readByte()
	if err != nil {
		return 0, err
	}
	n := 0
	for b&0x80 != 0 && n < 3 {
		value = value<<7 | uint32(b&0x7F)
		if b, err = d.readByte(); err != nil {
			return 0, err
		}
		n++
	}
	if n < 3 {
		value = value<<7 | uint32(b)
	} else {
		value = value<<8 | uint32(b)
	}
	return value, nil
}

// readIntegerAMF3 parses a U29 as a signed integer. Bit 28 can only be set
// by the four-byte form; when it is, the value sign-extends to two's
// complement.
func (d *Decoder) readIntegerAMF3() (int32, error) {
	value, err := d.readU29()
	if err != nil {
		return 0, err
	}
	if value&0x10000000 != 0 {
		value |= 0xE0000000
	}
	return int32(value), nil
}

// readStringAMF3 parses a U29-tagged string: a back-reference when the low
// bit is clear, otherwise an inline modified UTF-8 body. Non-empty inline
// strings enter the string table; the empty string never does.
func (d *Decoder) readStringAMF3() (string, error) {
	tag, err := d.readU29()
	if err != nil {
		return "", err
	}
	if tag&0x01 == 0 {
		return d.storedStringAMF3(int(tag >> 1))
	}
	length := int(tag >> 1)
	if length == 0 {
		return "", nil
	}
	raw, err := d.read(length)
	if err != nil {
		return "", err
	}
	s, err := decodeModifiedUTF8(raw)
	if err != nil {
		return "", err
	}
	d.storeStringAMF3(s)
	return s, nil
}

// readDateAMF3 parses a U29-tagged date. Inline dates are epoch milliseconds
// at UTC and enter the object table after construction; dates cannot
// self-reference.
func (d *Decoder) readDateAMF3() (time.Time, error) {
	tag, err := d.readU29()
	if err != nil {
		return time.Time{}, err
	}
	if tag&0x01 == 0 {
		stored, err := d.storedObjectAMF3(int(tag >> 1))
		if err != nil {
			return time.Time{}, err
		}
		date, ok := stored.(time.Time)
		if !ok {
			return time.Time{}, fmt.Errorf("AMF3 date reference %d holds %T", tag>>1, stored)
		}
		return date, nil
	}
	millis, err := d.readFloat64()
	if err != nil {
		return time.Time{}, err
	}
	date := time.UnixMilli(int64(millis)).UTC()
	d.storeObjectAMF3(date)
	return date, nil
}

// readArrayAMF3 parses a U29-tagged dense array. The array enters the object
// table before its elements are decoded. A non-empty leading key means an
// associative array, which is rejected.
func (d *Decoder) readArrayAMF3() (Array, error) {
	tag, err := d.readU29()
	if err != nil {
		return nil, err
	}
	if tag&0x01 == 0 {
		stored, err := d.storedObjectAMF3(int(tag >> 1))
		if err != nil {
			return nil, err
		}
		array, ok := stored.(Array)
		if !ok {
			return nil, fmt.Errorf("AMF3 array reference %d holds %T", tag>>1, stored)
		}
		return array, nil
	}
	size := int(tag >> 1)
	key, err := d.readStringAMF3()
	if err != nil {
		return nil, err
	}
	if key != "" {
		return nil, ErrAssociativeArray
	}
	if size > d.remaining() {
		return nil, ErrUnexpectedEOF
	}
	array := make(Array, size)
	d.storeObjectAMF3(array)
	for i := range array {
		if array[i], err = d.decodeAMF3(); err != nil {
			return nil, err
		}
	}
	return array, nil
}

// readByteArrayAMF3 parses a U29-tagged byte array. Inline blobs enter the
// object table after they are read.
func (d *Decoder) readByteArrayAMF3() ([]byte, error) {
	tag, err := d.readU29()
	if err != nil {
		return nil, err
	}
	if tag&0x01 == 0 {
		stored, err := d.storedObjectAMF3(int(tag >> 1))
		if err != nil {
			return nil, err
		}
		raw, ok := stored.([]byte)
		if !ok {
			return nil, fmt.Errorf("AMF3 byte array reference %d holds %T", tag>>1, stored)
		}
		return raw, nil
	}
	raw, err := d.read(int(tag >> 1))
	if err != nil {
		return nil, err
	}
	d.storeObjectAMF3(raw)
	return raw, nil
}
