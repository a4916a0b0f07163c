// If you are AI: This file converts JSON-wrapped externalizable bodies into
// decoder values.

package amf

import (
	"encoding/json"
	"fmt"
	"sort"
)

// readJSONBody reads a u32-length JSON blob and binds its top-level fields
// onto object. The blob must be a JSON object.
func (d *Decoder) readJSONBody(object *TypedObject) error {
	size, err := d.readUint32()
	if err != nil {
		return err
	}
	raw, err := d.read(int(size))
	if err != nil {
		return err
	}
	var parsed interface{}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s body: %w", object.ClassName, err)
	}
	fields, ok := parsed.(map[string]interface{})
	if !ok {
		return fmt.Errorf("%s body is JSON %T, want object", object.ClassName, parsed)
	}
	bindJSONObject(object, fields)
	return nil
}

// bindJSONObject copies a parsed JSON map onto object. Keys are bound in
// sorted order so repeated decodes produce the same property order.
func bindJSONObject(object *TypedObject, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		object.Set(key, jsonValue(fields[key]))
	}
}

// jsonValue converts one parsed JSON value into a decoder value. Nested
// objects become anonymous typed objects.
func jsonValue(parsed interface{}) Value {
	switch t := parsed.(type) {
	case map[string]interface{}:
		object := NewTypedObject("")
		bindJSONObject(object, t)
		return object
	case []interface{}:
		array := make(Array, len(t))
		for i, element := range t {
			array[i] = jsonValue(element)
		}
		return array
	default:
		// json.Unmarshal yields nil, bool, float64 or string here.
		return t
	}
}
