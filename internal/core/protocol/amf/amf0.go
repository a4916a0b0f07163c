// If you are AI: This file implements the AMF0 side of the decoder.
// The 0x11 marker hands the stream to the AMF3 reader for one value.

package amf

import (
	"fmt"
	"time"
)

// decodeAMF0 parses one AMF0 value at the cursor.
func (d *Decoder) decodeAMF0() (Value, error) {
	marker, err := d.readByte()
	if err != nil {
		return nil, err
	}
	var value Value
	switch marker {
	case markerAMF0Number:
		value, err = d.readFloat64()
	case markerAMF0Boolean:
		value, err = d.readBool()
	case markerAMF0String:
		value, err = d.readStringAMF0()
	case markerAMF0Object:
		value, err = d.readObjectAMF0()
	case markerAMF0Null:
		value = nil
	case markerAMF0Reference:
		value, err = d.readReferenceAMF0()
	case markerAMF0ObjectEnd:
		value = objectEnd{}
	case markerAMF0Array:
		value, err = d.readArrayAMF0()
	case markerAMF0Date:
		value, err = d.readDateAMF0()
	case markerAMF0TypedObject:
		value, err = d.readTypedObjectAMF0()
	case markerAMF0AVMPlus:
		value, err = d.decodeAMF3()
	case markerAMF0MovieClip, markerAMF0Undefined, markerAMF0MixedArray,
		markerAMF0LongString, markerAMF0Unsupported, markerAMF0RecordSet,
		markerAMF0XML:
		return nil, &UnsupportedTypeError{Dialect: DialectAMF0, Name: amf0TypeName(marker)}
	default:
		return nil, &UnknownMarkerError{Dialect: DialectAMF0, Marker: marker}
	}
	if err != nil {
		return nil, err
	}
	d.tracer.Debugf("AMF0 %s as %s", amf0TypeName(marker), renderValue(value))
	return value, nil
}

// readStringAMF0 parses a u16-length UTF-8 string.
func (d *Decoder) readStringAMF0() (string, error) {
	length, err := d.readUint16()
	if err != nil {
		return "", err
	}
	if length == 0 {
		return "", nil
	}
	raw, err := d.read(int(length))
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// readObjectAMF0 parses an anonymous object. Anonymous objects do not enter
// the object table.
func (d *Decoder) readObjectAMF0() (*TypedObject, error) {
	object := NewTypedObject("")
	if err := d.readPairsAMF0(object); err != nil {
		return nil, err
	}
	return object, nil
}

// readPairsAMF0 reads key/value pairs into object until a pair whose value
// is the object-end sentinel. The terminator pair is not stored.
func (d *Decoder) readPairsAMF0(object *TypedObject) error {
	for {
		key, err := d.readStringAMF0()
		if err != nil {
			return err
		}
		value, err := d.decodeAMF0()
		if err != nil {
			return err
		}
		if _, done := value.(objectEnd); done {
			return nil
		}
		object.Set(key, value)
	}
}

// readReferenceAMF0 resolves a u16 back-reference into the AMF0 object table.
func (d *Decoder) readReferenceAMF0() (Value, error) {
	index, err := d.readUint16()
	if err != nil {
		return nil, err
	}
	return d.storedObjectAMF0(int(index))
}

// readArrayAMF0 parses a strict array. The array enters the object table
// before its elements are decoded so elements may reference it.
func (d *Decoder) readArrayAMF0() (Array, error) {
	count, err := d.readUint32()
	if err != nil {
		return nil, err
	}
	if int(count) > d.remaining() {
		return nil, ErrUnexpectedEOF
	}
	array := make(Array, count)
	d.storeObjectAMF0(array)
	for i := range array {
		if array[i], err = d.decodeAMF0(); err != nil {
			return nil, err
		}
	}
	return array, nil
}

// readDateAMF0 parses epoch milliseconds followed by a zone offset in
// minutes, truncated to whole hours.
func (d *Decoder) readDateAMF0() (time.Time, error) {
	millis, err := d.readFloat64()
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := d.readUint16()
	if err != nil {
		return time.Time{}, err
	}
	hours := int(int16(minutes)) / 60
	date := time.UnixMilli(int64(millis))
	if hours == 0 {
		return date.UTC(), nil
	}
	zone := time.FixedZone(fmt.Sprintf("UTC%+d", hours), hours*3600)
	return date.In(zone), nil
}

// readTypedObjectAMF0 parses a class-named object. The object enters the
// object table before its class name and body are read.
func (d *Decoder) readTypedObjectAMF0() (*TypedObject, error) {
	object := NewTypedObject("")
	d.storeObjectAMF0(object)
	name, err := d.readStringAMF0()
	if err != nil {
		return nil, err
	}
	object.ClassName = name
	if err := d.readPairsAMF0(object); err != nil {
		return nil, err
	}
	return object, nil
}
