// If you are AI: This file implements the decoder entry point and the
// reference tables shared by the AMF0 and AMF3 readers.

package amf

import (
	"fmt"
)

// Decoder parses AMF payloads as carried by the League of Legends RTMP
// message channel. A Decoder may be reused for sequential payloads; its
// reference tables are cleared at every Decode. It must not be shared
// between goroutines.
type Decoder struct {
	data []byte
	pos  int

	stringsAMF3 []string
	objectsAMF3 []Value
	traitsAMF3  []*ClassDefinition
	objectsAMF0 []Value

	tracer Tracer
}

// NewDecoder creates a decoder that discards trace events.
func NewDecoder() *Decoder {
	return &Decoder{tracer: NopTracer()}
}

// SetTracer replaces the decoder's trace sink. A nil tracer restores the
// discarding default.
func (d *Decoder) SetTracer(tracer Tracer) {
	if tracer == nil {
		tracer = NopTracer()
	}
	d.tracer = tracer
}

// envelopeFields are the four AMF0 values every invocation response carries,
// in wire order.
var envelopeFields = [4]string{"result", "invokeId", "serviceCall", "data"}

// Decode parses a complete invocation response into out and returns it.
// A nil out allocates a fresh anonymous object. The payload is an optional
// 0x00 version byte followed by four AMF0 values; the buffer must be
// consumed exactly, otherwise Decode fails with TrailingBytesError.
func (d *Decoder) Decode(data []byte, out *TypedObject) (*TypedObject, error) {
	if out == nil {
		out = NewTypedObject("")
	}
	d.reset(data)
	if len(data) == 0 {
		return nil, ErrUnexpectedEOF
	}
	if data[0] == 0x00 {
		d.pos++
		out.Set("version", int32(0))
	}
	for _, field := range envelopeFields {
		value, err := d.decodeAMF0()
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", field, err)
		}
		out.Set(field, value)
	}
	if d.pos != len(d.data) {
		return nil, &TrailingBytesError{Pos: d.pos, Len: len(d.data), Raw: d.data}
	}
	return out, nil
}

// reset points the decoder at a new payload and clears all reference tables.
func (d *Decoder) reset(data []byte) {
	d.tracer.Debugf("clearing reference tables")
	d.data = data
	d.pos = 0
	d.stringsAMF3 = nil
	d.objectsAMF3 = nil
	d.traitsAMF3 = nil
	d.objectsAMF0 = nil
}

// storeObjectAMF0 appends a value to the AMF0 object table.
func (d *Decoder) storeObjectAMF0(value Value) {
	d.tracer.Debugf("store AMF0 object at %d as %s", len(d.objectsAMF0), renderValue(value))
	d.objectsAMF0 = append(d.objectsAMF0, value)
}

// storedObjectAMF0 resolves an AMF0 object back-reference.
func (d *Decoder) storedObjectAMF0(index int) (Value, error) {
	if index < 0 || index >= len(d.objectsAMF0) {
		return nil, &ReferenceOutOfRangeError{Table: "AMF0 object", Index: index}
	}
	value := d.objectsAMF0[index]
	d.tracer.Debugf("get AMF0 object at %d as %s", index, renderValue(value))
	return value, nil
}

// storeObjectAMF3 appends a value to the AMF3 object table.
func (d *Decoder) storeObjectAMF3(value Value) {
	d.tracer.Debugf("store AMF3 object at %d as %s", len(d.objectsAMF3), renderValue(value))
	d.objectsAMF3 = append(d.objectsAMF3, value)
}

// storedObjectAMF3 resolves an AMF3 object back-reference.
func (d *Decoder) storedObjectAMF3(index int) (Value, error) {
	if index < 0 || index >= len(d.objectsAMF3) {
		return nil, &ReferenceOutOfRangeError{Table: "AMF3 object", Index: index}
	}
	value := d.objectsAMF3[index]
	d.tracer.Debugf("get AMF3 object at %d as %s", index, renderValue(value))
	return value, nil
}

// storeStringAMF3 appends a string to the AMF3 string table. Callers never
// store the empty string.
func (d *Decoder) storeStringAMF3(s string) {
	d.tracer.Debugf("store AMF3 string at %d as %q", len(d.stringsAMF3), s)
	d.stringsAMF3 = append(d.stringsAMF3, s)
}

// storedStringAMF3 resolves an AMF3 string back-reference.
func (d *Decoder) storedStringAMF3(index int) (string, error) {
	if index < 0 || index >= len(d.stringsAMF3) {
		return "", &ReferenceOutOfRangeError{Table: "AMF3 string", Index: index}
	}
	s := d.stringsAMF3[index]
	d.tracer.Debugf("get AMF3 string at %d as %q", index, s)
	return s, nil
}

// storeTraitsAMF3 appends a class definition to the AMF3 traits table.
func (d *Decoder) storeTraitsAMF3(definition *ClassDefinition) {
	d.tracer.Debugf("store AMF3 traits at %d as %s", len(d.traitsAMF3), definition)
	d.traitsAMF3 = append(d.traitsAMF3, definition)
}

// storedTraitsAMF3 resolves an AMF3 traits back-reference.
func (d *Decoder) storedTraitsAMF3(index int) (*ClassDefinition, error) {
	if index < 0 || index >= len(d.traitsAMF3) {
		return nil, &ReferenceOutOfRangeError{Table: "AMF3 traits", Index: index}
	}
	definition := d.traitsAMF3[index]
	d.tracer.Debugf("get AMF3 traits at %d as %s", index, definition)
	return definition, nil
}
