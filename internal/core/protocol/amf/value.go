// If you are AI: This file defines the value model the AMF decoder produces.
// Typed objects preserve property insertion order.

package amf

import (
	"fmt"
	"time"
)

// Value is any decoded AMF value. The concrete types are nil, bool, float64,
// int32, string, []byte, time.Time, Array and *TypedObject.
type Value interface{}

// Array is a dense, zero-based AMF array.
type Array []Value

// Undefined is the token string AMF3 undefined values decode to.
const Undefined = "AMF3_UNDEFINED"

// objectEnd terminates an AMF0 object stream. It never surfaces to callers.
type objectEnd struct{}

// ClassDefinition describes the AMF3 traits of one class: its name, how its
// body is encoded, and the sealed property names in declared order.
type ClassDefinition struct {
	ClassName      string
	Externalizable bool
	Encoding       byte
	Properties     []string
}

// Dynamic reports whether object bodies carry trailing key/value members
// after the sealed properties.
func (c *ClassDefinition) Dynamic() bool {
	return c.Encoding == 0x02
}

// String renders the definition for trace output.
func (c *ClassDefinition) String() string {
	name := c.ClassName
	if name == "" {
		name = "anonymous"
	}
	return fmt.Sprintf("%s(encoding=%d, properties=%d)", name, c.Encoding, len(c.Properties))
}

// TypedObject is a class-tagged property mapping. Property order follows
// first insertion, and keys are unique. Create instances with NewTypedObject;
// the zero value has no field storage.
type TypedObject struct {
	ClassName string

	keys   []string
	fields map[string]Value
}

// NewTypedObject creates an empty object. Anonymous objects use the empty
// class name.
func NewTypedObject(className string) *TypedObject {
	return &TypedObject{
		ClassName: className,
		fields:    make(map[string]Value),
	}
}

// Set binds value to key. New keys append to the property order; existing
// keys keep their original position.
func (o *TypedObject) Set(key string, value Value) {
	if _, ok := o.fields[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.fields[key] = value
}

// Get returns the value bound to key and whether the key exists.
func (o *TypedObject) Get(key string) (Value, bool) {
	v, ok := o.fields[key]
	return v, ok
}

// Keys returns the property names in insertion order. The slice is owned by
// the object and must not be modified.
func (o *TypedObject) Keys() []string {
	return o.keys
}

// Len returns the number of properties.
func (o *TypedObject) Len() int {
	return len(o.keys)
}

// GetString returns the string bound to key.
func (o *TypedObject) GetString(key string) (string, bool) {
	s, ok := o.fields[key].(string)
	return s, ok
}

// GetFloat64 returns the number bound to key. AMF3 integers widen to float64.
func (o *TypedObject) GetFloat64(key string) (float64, bool) {
	switch v := o.fields[key].(type) {
	case float64:
		return v, true
	case int32:
		return float64(v), true
	}
	return 0, false
}

// GetInt returns the number bound to key truncated to int.
func (o *TypedObject) GetInt(key string) (int, bool) {
	switch v := o.fields[key].(type) {
	case int32:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}

// GetBool returns the boolean bound to key.
func (o *TypedObject) GetBool(key string) (bool, bool) {
	b, ok := o.fields[key].(bool)
	return b, ok
}

// GetObject returns the typed object bound to key.
func (o *TypedObject) GetObject(key string) (*TypedObject, bool) {
	obj, ok := o.fields[key].(*TypedObject)
	return obj, ok
}

// GetArray returns the array bound to key.
func (o *TypedObject) GetArray(key string) (Array, bool) {
	arr, ok := o.fields[key].(Array)
	return arr, ok
}

// GetBytes returns the byte array bound to key.
func (o *TypedObject) GetBytes(key string) ([]byte, bool) {
	b, ok := o.fields[key].([]byte)
	return b, ok
}

// GetTime returns the date bound to key.
func (o *TypedObject) GetTime(key string) (time.Time, bool) {
	t, ok := o.fields[key].(time.Time)
	return t, ok
}

// String renders the object one level deep. Nested composites are
// summarized, which keeps self-referential objects printable.
func (o *TypedObject) String() string {
	out := o.ClassName
	if out == "" {
		out = "object"
	}
	out += "{"
	for i, key := range o.keys {
		if i > 0 {
			out += ", "
		}
		out += key + "=" + renderShallow(o.fields[key])
	}
	return out + "}"
}
